package tutor

// DefaultTable returns the built-in reply tables. Within a level, longer
// and more specific phrases are listed before the short words they
// contain, so "how are you" is tried before "hello". Each call returns a
// fresh copy that the caller may modify.
func DefaultTable() *ResponseTable {
	return builtinTable.Clone()
}

var builtinTable = &ResponseTable{
	Topics: map[Topic]TopicTable{
		Greetings: greetingsTable,
		Travel:    travelTable,
		Food:      foodTable,
		Shopping:  shoppingTable,
		DailyLife: dailyLifeTable,
		Work:      workTable,
		Health:    healthTable,
		Culture:   cultureTable,
	},
	Defaults: globalDefaults,
}

var globalDefaults = map[Level][]string{
	Beginner: {
		"¡Qué interesante! ¿Puedes decir más?",
		"Muy bien. ¿Y tú?",
		"No entiendo bien. ¿Puedes repetir, por favor?",
	},
	Intermediate: {
		"Interesante. ¿Podrías explicarme un poco más?",
		"Entiendo. ¿Qué opinas tú sobre eso?",
		"Vamos a practicar un poco más. ¿Qué hiciste ayer?",
	},
	Advanced: {
		"Me parece un punto de vista fascinante. ¿Podrías profundizar un poco más?",
		"No estoy seguro de haberte entendido del todo. ¿Me lo explicas de otra manera?",
		"Eso da para una larga conversación. ¿Por dónde te gustaría empezar?",
	},
}

var greetingsTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "how are you", Replies: []string{
				"Estoy bien, gracias. ¿Y tú?",
				"Muy bien, gracias. ¿Qué tal tú?",
				"Bien, gracias. ¿Qué tal tu día?",
			}},
			{Keyword: "my name is", Replies: []string{
				"¡Mucho gusto! Yo me llamo Sofía.",
				"¡Encantada! ¿De dónde eres?",
			}},
			{Keyword: "good morning", Replies: []string{
				"¡Buenos días! ¿Cómo estás?",
				"¡Buenos días! ¿Qué tal?",
			}},
			{Keyword: "good night", Replies: []string{
				"¡Buenas noches! Hasta mañana.",
				"Buenas noches. ¡Que descanses!",
			}},
			{Keyword: "hello", Replies: []string{
				"¡Hola! ¿Cómo estás?",
				"¡Hola! ¿Qué tal?",
				"¡Hola! Me llamo Sofía. ¿Y tú?",
			}},
			{Keyword: "hola", Replies: []string{
				"¡Hola! ¿Cómo te llamas?",
				"¡Hola! ¿Qué tal estás?",
			}},
			{Keyword: "bye", Replies: []string{
				"¡Adiós! Hasta luego.",
				"¡Hasta pronto!",
			}},
			{Keyword: "thank", Replies: []string{
				"¡De nada!",
				"De nada. ¡Con mucho gusto!",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "how are you", Replies: []string{
				"Estoy muy bien, gracias por preguntar. ¿Y tú, cómo te encuentras hoy?",
				"Pues, un poco cansada, pero bien. ¿Qué tal te va a ti?",
			}},
			{Keyword: "where are you from", Replies: []string{
				"Soy de Sevilla, en el sur de España. ¿Y tú de dónde eres?",
				"Soy de México, de Guadalajara. ¿Has estado alguna vez allí?",
			}},
			{Keyword: "nice to meet you", Replies: []string{
				"¡Igualmente! Es un placer conocerte.",
				"El gusto es mío. ¿Hace cuánto que estudias español?",
			}},
			{Keyword: "hello", Replies: []string{
				"¡Hola! ¿Qué tal te ha ido el día?",
				"¡Hola! ¡Qué alegría verte por aquí! ¿Qué me cuentas?",
			}},
		}},
		Advanced: {Keywords: []KeywordReplies{
			{Keyword: "how are you", Replies: []string{
				"La verdad es que no me puedo quejar. ¿Y a ti cómo te trata la vida últimamente?",
				"Aquí estamos, al pie del cañón. ¿Qué tal te va todo?",
			}},
			{Keyword: "long time", Replies: []string{
				"¡Cuánto tiempo sin vernos! Ponme al día, ¿qué ha sido de tu vida?",
				"¡Ya era hora! Pensaba que te había tragado la tierra.",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¡Hola! ¿Cómo te llamas?",
			"¿De dónde eres?",
			"¿Cómo estás hoy?",
		},
		Intermediate: {
			"¿Qué sueles hacer para conocer gente nueva?",
			"Cuéntame un poco sobre ti. ¿A qué te dedicas?",
		},
		Advanced: {
			"¿Crees que la forma de saludar dice mucho de una cultura?",
			"En España solemos dar dos besos al saludar. ¿Cómo se saluda en tu país?",
		},
	},
}

var travelTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "where is", Replies: []string{
				"Está a la derecha.",
				"Está cerca de aquí. Todo recto.",
				"Está a la izquierda, al lado del banco.",
			}},
			{Keyword: "hotel", Replies: []string{
				"El hotel está en el centro.",
				"¿Tienes una reserva en el hotel?",
			}},
			{Keyword: "train", Replies: []string{
				"El tren sale a las diez.",
				"La estación de tren está muy cerca.",
			}},
			{Keyword: "airport", Replies: []string{
				"El aeropuerto está lejos. Necesitas un taxi.",
				"¿A qué hora es tu vuelo?",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "ticket", Replies: []string{
				"Puedes comprar el billete en la taquilla o por internet. ¿Lo quieres de ida y vuelta?",
				"Los billetes de tren son más baratos si los compras con antelación.",
			}},
			{Keyword: "reservation", Replies: []string{
				"¿A nombre de quién está la reserva?",
				"Tengo una reserva para dos noches. ¿Incluye el desayuno?",
			}},
			{Keyword: "lost", Replies: []string{
				"No te preocupes. ¿Qué estás buscando? Te puedo indicar el camino.",
				"Si te has perdido, lo mejor es preguntar en la oficina de turismo.",
			}},
		}},
		Advanced: {Keywords: []KeywordReplies{
			{Keyword: "recommend", Replies: []string{
				"Si tuviera que recomendarte un sitio, sin duda sería el Camino de Santiago. Es una experiencia que te cambia.",
				"Te recomendaría perderte por los pueblos blancos de Andalucía, lejos de las rutas turísticas.",
			}},
			{Keyword: "delay", Replies: []string{
				"Los retrasos son un fastidio. ¿Te han ofrecido alguna compensación?",
				"Si el vuelo se retrasa más de tres horas, tienes derecho a reclamar una indemnización.",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿Adónde quieres viajar?",
			"¿Te gusta viajar en tren o en avión?",
		},
		Intermediate: {
			"¿Cuál ha sido el mejor viaje de tu vida?",
			"¿Prefieres viajar solo o acompañado?",
		},
		Advanced: {
			"¿Crees que el turismo masivo está cambiando la identidad de las ciudades?",
			"Si pudieras vivir un año en cualquier país hispanohablante, ¿cuál elegirías y por qué?",
		},
	},
}

var foodTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "menu", Replies: []string{
				"Aquí tiene el menú.",
				"El menú del día es sopa y pollo.",
			}},
			{Keyword: "water", Replies: []string{
				"¿Agua con gas o sin gas?",
				"Aquí tiene su agua.",
			}},
			{Keyword: "hungry", Replies: []string{
				"¿Tienes hambre? ¡Vamos a comer!",
				"Yo también tengo hambre.",
			}},
			{Keyword: "like", Replies: []string{
				"Me gusta mucho la paella. ¿Y a ti?",
				"¿Te gusta la comida española?",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "recipe", Replies: []string{
				"Para la tortilla de patatas necesitas huevos, patatas, aceite y, si quieres, cebolla.",
				"Mi receta favorita es el gazpacho. Es perfecto para el verano.",
			}},
			{Keyword: "bill", Replies: []string{
				"Enseguida le traigo la cuenta.",
				"¿Van a pagar juntos o por separado?",
			}},
			{Keyword: "vegetarian", Replies: []string{
				"Tenemos varios platos vegetarianos, como las espinacas con garbanzos.",
				"¿Eres vegetariano desde hace mucho tiempo?",
			}},
		}},
		Advanced: {Keywords: []KeywordReplies{
			{Keyword: "restaurant", Replies: []string{
				"Conozco un restaurante escondido en el casco antiguo donde se come de maravilla.",
				"Hoy en día reservar mesa en los restaurantes de moda es misión imposible.",
			}},
			{Keyword: "hungry", Replies: []string{
				"Estoy muerto de hambre; me comería un caballo. ¿Picamos algo?",
				"Se me hace la boca agua solo de pensar en unas tapas. ¿Vamos a tomar algo?",
			}},
			{Keyword: "wine", Replies: []string{
				"Un buen Rioja marida de maravilla con el cordero asado.",
				"¿Prefieres un tinto con cuerpo o un blanco más afrutado?",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿Cuál es tu comida favorita?",
			"¿Qué te gusta desayunar?",
		},
		Intermediate: {
			"¿Sabes cocinar algún plato típico de tu país?",
			"¿Qué plato español te gustaría probar?",
		},
		Advanced: {
			"¿Crees que la gastronomía es una forma de patrimonio cultural?",
			"¿Qué opinas de la cocina de fusión?",
		},
	},
}

var shoppingTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "how much", Replies: []string{
				"Cuesta diez euros.",
				"Son veinte euros, por favor.",
				"Es muy barato. Solo cinco euros.",
			}},
			{Keyword: "size", Replies: []string{
				"¿Qué talla necesitas?",
				"Tenemos la talla mediana.",
			}},
			{Keyword: "color", Replies: []string{
				"Lo tenemos en rojo y en azul.",
				"¿Qué color te gusta?",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "discount", Replies: []string{
				"Esta semana tenemos un descuento del veinte por ciento en toda la tienda.",
				"Con la tarjeta de cliente tienes un cinco por ciento de descuento.",
			}},
			{Keyword: "try on", Replies: []string{
				"Claro, los probadores están al fondo a la derecha.",
				"Puedes probarte hasta tres prendas a la vez.",
			}},
			{Keyword: "return", Replies: []string{
				"Puedes devolverlo en un plazo de treinta días con el tique de compra.",
				"¿Qué problema tiene el producto?",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿Qué quieres comprar?",
			"¿Te gusta ir de compras?",
		},
		Intermediate: {
			"¿Prefieres comprar en tiendas físicas o por internet?",
			"¿Qué fue lo último que compraste?",
		},
	},
}

var dailyLifeTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "wake up", Replies: []string{
				"Yo me despierto a las siete.",
				"¿A qué hora te despiertas?",
			}},
			{Keyword: "weekend", Replies: []string{
				"El fin de semana descanso y veo a mis amigos.",
				"¿Qué haces el fin de semana?",
			}},
			{Keyword: "breakfast", Replies: []string{
				"Desayuno café con tostadas.",
				"¿Qué desayunas normalmente?",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "routine", Replies: []string{
				"Mi rutina es bastante tranquila: trabajo por la mañana y por la tarde hago deporte.",
				"¿Te cuesta mantener una rutina cuando estás de vacaciones?",
			}},
			{Keyword: "tired", Replies: []string{
				"Si estás cansado, quizás deberías acostarte más temprano.",
				"¿Has dormido bien esta semana?",
			}},
		}},
		Advanced: {Keywords: []KeywordReplies{
			{Keyword: "stress", Replies: []string{
				"El estrés del día a día nos pasa factura a todos. ¿Tienes algún truco para desconectar?",
				"A veces hay que aprender a decir que no para no acabar agotado.",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿Qué haces por la mañana?",
			"¿A qué hora comes?",
		},
		Intermediate: {
			"Describe un día normal en tu vida.",
			"¿Qué es lo que más te gusta de tu rutina?",
		},
		Advanced: {
			"¿Crees que el ritmo de vida actual es sostenible?",
			"¿Cómo ha cambiado tu día a día en los últimos años?",
		},
	},
}

var workTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "job", Replies: []string{
				"Yo soy profesora. ¿Y tú?",
				"¿Dónde trabajas?",
			}},
			{Keyword: "office", Replies: []string{
				"Mi oficina está en el centro.",
				"¿Trabajas en una oficina?",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "interview", Replies: []string{
				"Para una entrevista de trabajo es importante llegar puntual y preparar preguntas.",
				"¿Qué tal te fue la entrevista? ¿Te hicieron preguntas difíciles?",
			}},
			{Keyword: "boss", Replies: []string{
				"¿Te llevas bien con tu jefe?",
				"Tener un buen jefe hace que el trabajo sea mucho más agradable.",
			}},
			{Keyword: "meeting", Replies: []string{
				"La reunión empieza a las diez en la sala de juntas.",
				"¿Tienes muchas reuniones durante la semana?",
			}},
		}},
		Advanced: {Keywords: []KeywordReplies{
			{Keyword: "remote", Replies: []string{
				"El teletrabajo tiene sus ventajas, pero a veces echo de menos el contacto con los compañeros.",
				"¿Crees que el teletrabajo ha llegado para quedarse?",
			}},
			{Keyword: "salary", Replies: []string{
				"Negociar el sueldo siempre es delicado; conviene saber cuánto se paga en el sector.",
				"¿Qué valoras más, un buen sueldo o un buen ambiente laboral?",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿En qué trabajas?",
			"¿Te gusta tu trabajo?",
		},
		Intermediate: {
			"¿Cuál sería tu trabajo ideal?",
			"¿Qué es lo más difícil de tu trabajo?",
		},
		Advanced: {
			"¿Cómo crees que la inteligencia artificial cambiará el mundo laboral?",
			"¿Qué opinas de la semana laboral de cuatro días?",
		},
	},
}

var healthTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "headache", Replies: []string{
				"¿Te duele la cabeza? Bebe agua y descansa.",
				"Lo siento. ¿Tomas una pastilla?",
			}},
			{Keyword: "doctor", Replies: []string{
				"El médico llega a las cinco.",
				"¿Necesitas ir al médico?",
			}},
			{Keyword: "sick", Replies: []string{
				"¡Oh, no! ¿Estás enfermo?",
				"Lo siento. ¡Que te mejores!",
			}},
		}},
		Intermediate: {Keywords: []KeywordReplies{
			{Keyword: "fever", Replies: []string{
				"Si tienes fiebre, deberías quedarte en casa y beber mucho líquido.",
				"¿Desde cuándo tienes fiebre? ¿Te has tomado la temperatura?",
			}},
			{Keyword: "appointment", Replies: []string{
				"Puedes pedir cita con el médico por teléfono o por internet.",
				"Tengo cita con la dentista el jueves por la mañana.",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿Cómo te sientes hoy?",
			"¿Haces deporte?",
		},
		Intermediate: {
			"¿Qué haces para mantenerte sano?",
			"¿Cuándo fue la última vez que fuiste al médico?",
		},
	},
}

// culture defines keywords for beginners only; other levels use the
// topic defaults.
var cultureTable = TopicTable{
	Levels: map[Level]LevelTable{
		Beginner: {Keywords: []KeywordReplies{
			{Keyword: "music", Replies: []string{
				"Me gusta la música latina. ¿Te gusta bailar salsa?",
				"¿Conoces el flamenco?",
			}},
			{Keyword: "festival", Replies: []string{
				"La Tomatina es una fiesta muy divertida.",
				"En julio hay fiestas en Pamplona.",
			}},
			{Keyword: "christmas", Replies: []string{
				"En España los Reyes Magos traen regalos el seis de enero.",
				"En Nochevieja comemos doce uvas.",
			}},
		}},
	},
	Defaults: map[Level][]string{
		Beginner: {
			"¿Qué sabes de la cultura española?",
			"¿Te gustan las fiestas tradicionales?",
		},
		Intermediate: {
			"¿Qué tradición de un país hispanohablante te parece más interesante?",
			"¿Has celebrado alguna vez el Día de Muertos?",
		},
		Advanced: {
			"¿Hasta qué punto crees que la globalización pone en peligro las tradiciones locales?",
			"¿Qué autor o autora en español te ha marcado más?",
		},
	},
}
