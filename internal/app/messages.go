package app

import "fmt"

var mainKeyboard = [][]string{
	{"✅ Entscheidung", "🧠 Pro & Contra"},
	{"🎯 Kurz-Tipp", "📊 Status"},
	{"🔄 Neustart", "ℹ️ Hilfe"},
}

const startText = "👋 *Entscheidungshelfer*\n\n" +
	"Schreib dein Thema – ich entscheide mit dir.\n\n" +
	"Beispiel:\n" +
	"Soll ich heute noch arbeiten oder Feierabend machen?"

const helpText = "✅ Entscheidung – Empfehlung\n" +
	"🧠 Pro & Contra – Liste\n" +
	"🎯 Kurz-Tipp – 2 Sätze\n\n" +
	"Ohne Abo: 1 Anfrage / Tag"

const limitText = "⛔ Tageslimit erreicht"

const restartText = "🔄 Neustart"

const okText = "✅ OK"

// adText builds the promotional line appended to some free-tier replies.
func adText(tag string) string {
	return fmt.Sprintf("\n\n🎁 Geschenk gesucht? Schreib Anlass + Budget – ich helfe. (%s)", tag)
}
