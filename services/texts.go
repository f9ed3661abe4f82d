package services

import "strings"

const (
	textJoined           = "✅ %s додано до списку!"
	textAlreadyJoined    = "👀 %s вже є у списку."
	textNoParticipants   = "🚫 У таблиці немає жодної людини!"
	textAlreadyPicked    = "👀 Людину дня вже обрано раніше: %s! Додайте нового учасника або дочекайтесь нового дня"
	textNewPick          = "🎉 Людина дня: %s!"
	textRosterHeader     = "📋 Список усіх учасників:\n\n"
	textWhoAmI           = "🧐 %s, ти допитлива людина 😏"
	textNotPickedYet     = "😕 Ще не обрано людину дня."
	textJoke             = "😂 Анекдот про %s:\n\n%s"
	textJokeFailed       = "😬 Виникла помилка при отриманні анекдота."
	textJokeButton       = "😂 Анекдот про нього"
	textUnknownRequester = "Анонім"
)

// Telegram legacy Markdown only reserves these four characters.
var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// boldMarkdown wraps s in a bold entity. Legacy Markdown has no escapes inside
// an entity, so the entity is closed around every reserved character.
func boldMarkdown(s string) string {
	var b strings.Builder
	open := false
	for _, r := range s {
		if strings.ContainsRune("_*`[", r) {
			if open {
				b.WriteByte('*')
				open = false
			}
			b.WriteByte('\\')
			b.WriteRune(r)
			continue
		}
		if !open {
			b.WriteByte('*')
			open = true
		}
		b.WriteRune(r)
	}
	if open {
		b.WriteByte('*')
	}
	return b.String()
}
