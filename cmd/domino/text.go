package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/block-domino/block-domino/game/runner"
)

// supportedLanguages are the languages the game can be played in.  The first language is the default.
var supportedLanguages = []language.Tag{
	language.English,
	language.Indonesian,
}

// Keys of the text the front end prints.  The English text is the key.
const (
	textRoundStarted   = "Round %d starts. %s plays first."
	textTilePlayed     = "%s played %s on the %s."
	textPlayerSkipped  = "%s cannot play and is skipped."
	textRoundWon       = "Round %d is over. %s scores %d points."
	textRoundNoWinner  = "Round %d is over. No one wins the round."
	textGameOver       = "Game over! %s wins with %d points."
	textScores         = "Scores:"
	textScore          = "  %s: %d"
	textLeader         = "Leader: %s with %d points."
	textBoard          = "Board: %s"
	textEmptyBoard     = "Board: (empty)"
	textHand           = "%s, your tiles: %s"
	textPlayable       = "You can play: %s"
	textPrompt         = "Enter a tile and a side, like 3-5 l: "
	textBadInput       = "Could not understand %q. Enter a tile like 3-5, then l or r if needed."
	textRules          = "Rules:"
	textLeft           = "left"
	textRight          = "right"
	textPlayerName     = "Player %d"
	textAutomatedName  = "Computer %d"
	textSnapshotHeader = "Final game:"
)

// translations maps the Indonesian text for each key.
var translations = map[string]string{
	textRoundStarted:            "Babak %d dimulai. %s bermain lebih dulu.",
	textTilePlayed:              "%s memainkan %s di ujung %s.",
	textPlayerSkipped:           "%s tidak bisa bermain dan dilewati.",
	textRoundWon:                "Babak %d selesai. %s mendapat %d poin.",
	textRoundNoWinner:           "Babak %d selesai. Tidak ada pemenang babak ini.",
	textGameOver:                "Permainan selesai! %s menang dengan %d poin.",
	textScores:                  "Skor:",
	textLeader:                  "Pemimpin: %s dengan %d poin.",
	textBoard:                   "Papan: %s",
	textEmptyBoard:              "Papan: (kosong)",
	textHand:                    "%s, kartu Anda: %s",
	textPlayable:                "Anda bisa memainkan: %s",
	textPrompt:                  "Masukkan kartu dan ujung, misalnya 3-5 l: ",
	textBadInput:                "Tidak mengerti %q. Masukkan kartu seperti 3-5, lalu l atau r jika perlu.",
	textRules:                   "Aturan:",
	textLeft:                    "kiri",
	textRight:                   "kanan",
	textPlayerName:              "Pemain %d",
	textAutomatedName:           "Komputer %d",
	textSnapshotHeader:          "Permainan akhir:",
	runner.WarningNotYourTurn:   "Bukan giliran Anda.",
	runner.WarningTileNotInHand: "Kartu itu tidak ada di tangan Anda.",
	runner.WarningCannotPlay:    "Kartu itu tidak bisa dimainkan di sana.",
	runner.WarningChooseSide:    "Kartu itu bisa dimainkan di kedua ujung. Pilih ujungnya.",
}

// newCatalog creates the catalog of translated text.
func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(supportedLanguages[0]))
	for key, text := range translations {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
		if err := b.SetString(language.Indonesian, key, text); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// newPrinter creates a printer for the supported language that best matches the language name.
// The default language is used if the name is not valid.
func newPrinter(lang string, c catalog.Catalog) *message.Printer {
	t := matchLanguage(lang)
	return message.NewPrinter(t, message.Catalog(c))
}

// matchLanguage finds the supported language that best matches the language name.
func matchLanguage(lang string) language.Tag {
	t, err := language.Parse(lang)
	if err != nil {
		return supportedLanguages[0]
	}
	m := language.NewMatcher(supportedLanguages)
	_, i, _ := m.Match(t)
	return supportedLanguages[i]
}
