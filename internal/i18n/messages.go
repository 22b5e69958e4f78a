package i18n

import "golang.org/x/text/language"

// messages maps locale -> key -> format string. Keys under "error." are the
// validation codes returned by the service layer.
var messages = map[language.Tag]map[string]string{
	language.Ukrainian: {
		"app.title": "Моя ігрова полиця",

		"nav.home":     "Головна",
		"nav.register": "Реєстрація",
		"nav.login":    "Вхід",
		"nav.profile":  "Профіль",
		"nav.add_game": "Додати гру",
		"nav.logout":   "Вийти",
		"nav.theme":    "Змінити тему",

		"index.welcome":  "Ведіть облік ігор, у які ви граєте.",
		"index.greeting": "Вітаємо, %s!",

		"form.username": "Логін",
		"form.password": "Пароль",
		"form.title":    "Назва",
		"form.genre":    "Жанр",
		"form.status":   "Статус",
		"form.submit":   "Надіслати",

		"register.heading": "Реєстрація",
		"login.heading":    "Вхід",
		"add_game.heading": "Нова гра",

		"profile.heading":  "Профіль користувача %s",
		"profile.games":    "Мої ігри",
		"profile.no_games": "Ви ще не додали жодної гри.",

		"error.username_too_short":  "Логін має містити мінімум %d символи",
		"error.username_too_long":   "Логін має містити не більше %d символів",
		"error.password_too_short":  "Пароль має містити мінімум %d символів",
		"error.password_too_long":   "Пароль має містити не більше %d байтів",
		"error.username_taken":      "Такий логін вже існує",
		"error.invalid_credentials": "Невірний логін або пароль",
		"error.game_field_required": "Заповніть усі поля",
		"error.internal":            "Щось пішло не так. Спробуйте пізніше.",
		"error.not_found":           "Сторінку не знайдено",
	},
	language.English: {
		"app.title": "My Game Shelf",

		"nav.home":     "Home",
		"nav.register": "Register",
		"nav.login":    "Log in",
		"nav.profile":  "Profile",
		"nav.add_game": "Add game",
		"nav.logout":   "Log out",
		"nav.theme":    "Toggle theme",

		"index.welcome":  "Keep track of the games you play.",
		"index.greeting": "Welcome, %s!",

		"form.username": "Username",
		"form.password": "Password",
		"form.title":    "Title",
		"form.genre":    "Genre",
		"form.status":   "Status",
		"form.submit":   "Submit",

		"register.heading": "Register",
		"login.heading":    "Log in",
		"add_game.heading": "New game",

		"profile.heading":  "Profile of %s",
		"profile.games":    "My games",
		"profile.no_games": "You have not added any games yet.",

		"error.username_too_short":  "Username must be at least %d characters",
		"error.username_too_long":   "Username must be at most %d characters",
		"error.password_too_short":  "Password must be at least %d characters",
		"error.password_too_long":   "Password must be at most %d bytes",
		"error.username_taken":      "That username is already taken",
		"error.invalid_credentials": "Invalid username or password",
		"error.game_field_required": "Please fill in every field",
		"error.internal":            "Something went wrong. Please try again later.",
		"error.not_found":           "Page not found",
	},
}
