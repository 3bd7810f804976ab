package i18n

// Phrases is the static UI text table for one language.
type Phrases map[string]string

// T returns the phrase for key, or the key itself when missing.
func (p Phrases) T(key string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return key
}

var phrases = map[Lang]Phrases{
	Ukrainian: {
		"site_title":       "Імпресіонізм Олексія Куревіна",
		"nav_home":         "Головна",
		"nav_gallery":      "Галерея",
		"nav_about":        "Про художника",
		"nav_contact":      "Контакти",
		"hero_subtitle":    "Світло, колір та емоції на полотні",
		"view_gallery":     "Переглянути роботи",
		"contact_artist":   "Зв'язатися з художником",
		"featured_works":   "Вибрані роботи",
		"all_works":        "Усі роботи",
		"about_title":      "Про художника",
		"about_text":       "Олексій Куревін — одеський художник-імпресіоніст. Його полотна передають світло, повітря та настрій рідного міста.",
		"contact_title":    "Зв'язатися",
		"contact_subtitle": "Якщо вас зацікавила робота або ви бажаєте замовити картину",
		"your_name":        "Ваше ім'я",
		"your_email":       "Ваш email",
		"your_phone":       "Телефон",
		"your_message":     "Повідомлення",
		"send":             "Надіслати",
		"price":            "Ціна",
		"size":             "Розмір",
		"year":             "Рік",
		"technique":        "Техніка",
		"oil_on_canvas":    "Олія на полотні",
		"available":        "Доступна",
		"sold":             "Продано",
		"inquire":          "Запитати про цю роботу",
		"back_to_gallery":  "Повернутися до галереї",
		"interested_in":    "Мене цікавить робота",
		"message_sent":     "Дякуємо! Ваше повідомлення надіслано.",
		"all_paintings":    "Усі картини",
		"filter_available": "Доступні",
		"filter_sold":      "Продані",
		"other_works":      "Інші роботи",
		"not_found":        "Сторінку не знайдено",
		"server_error":     "Сталася помилка. Спробуйте пізніше.",
	},
	English: {
		"site_title":       "Impressionism by Alexey Kurevin",
		"nav_home":         "Home",
		"nav_gallery":      "Gallery",
		"nav_about":        "About",
		"nav_contact":      "Contact",
		"hero_subtitle":    "Light, color and emotion on canvas",
		"view_gallery":     "View Gallery",
		"contact_artist":   "Contact the Artist",
		"featured_works":   "Featured Works",
		"all_works":        "All Works",
		"about_title":      "About the Artist",
		"about_text":       "Alexey Kurevin is an impressionist painter from Odesa. His canvases carry the light, air and mood of his home city.",
		"contact_title":    "Get in Touch",
		"contact_subtitle": "If you are interested in a work or would like to commission a painting",
		"your_name":        "Your Name",
		"your_email":       "Your Email",
		"your_phone":       "Phone",
		"your_message":     "Message",
		"send":             "Send",
		"price":            "Price",
		"size":             "Size",
		"year":             "Year",
		"technique":        "Technique",
		"oil_on_canvas":    "Oil on canvas",
		"available":        "Available",
		"sold":             "Sold",
		"inquire":          "Inquire about this work",
		"back_to_gallery":  "Back to Gallery",
		"interested_in":    "I am interested in the work",
		"message_sent":     "Thank you! Your message has been sent.",
		"all_paintings":    "All Paintings",
		"filter_available": "Available",
		"filter_sold":      "Sold",
		"other_works":      "Other Works",
		"not_found":        "Page not found",
		"server_error":     "Something went wrong. Please try again later.",
	},
	Russian: {
		"site_title":       "Импрессионизм Алексея Куревина",
		"nav_home":         "Главная",
		"nav_gallery":      "Галерея",
		"nav_about":        "О художнике",
		"nav_contact":      "Контакты",
		"hero_subtitle":    "Свет, цвет и эмоции на холсте",
		"view_gallery":     "Смотреть работы",
		"contact_artist":   "Связаться с художником",
		"featured_works":   "Избранные работы",
		"all_works":        "Все работы",
		"about_title":      "О художнике",
		"about_text":       "Алексей Куревин — одесский художник-импрессионист. Его полотна передают свет, воздух и настроение родного города.",
		"contact_title":    "Связаться",
		"contact_subtitle": "Если вас заинтересовала работа или вы хотите заказать картину",
		"your_name":        "Ваше имя",
		"your_email":       "Ваш email",
		"your_phone":       "Телефон",
		"your_message":     "Сообщение",
		"send":             "Отправить",
		"price":            "Цена",
		"size":             "Размер",
		"year":             "Год",
		"technique":        "Техника",
		"oil_on_canvas":    "Масло на холсте",
		"available":        "Доступна",
		"sold":             "Продано",
		"inquire":          "Узнать об этой работе",
		"back_to_gallery":  "Вернуться в галерею",
		"interested_in":    "Меня интересует работа",
		"message_sent":     "Спасибо! Ваше сообщение отправлено.",
		"all_paintings":    "Все картины",
		"filter_available": "Доступные",
		"filter_sold":      "Проданные",
		"other_works":      "Другие работы",
		"not_found":        "Страница не найдена",
		"server_error":     "Произошла ошибка. Попробуйте позже.",
	},
}

// For returns the phrase table for lang, falling back to the default
// language's table for unsupported codes.
func For(lang Lang) Phrases {
	if p, ok := phrases[lang]; ok {
		return p
	}
	return phrases[Default]
}

// DefaultTechnique is the "oil on canvas" phrase used when a painting is
// created without a technique for lang.
func DefaultTechnique(lang Lang) string {
	return For(lang)["oil_on_canvas"]
}
