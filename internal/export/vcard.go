// Package export writes the current search result to files other tools understand.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-donor/internal/config"
	"github.com/tartampluch/go-donor/internal/engine"
)

// WriteVCards encodes one vCard 4.0 per donor, in the given order.
func WriteVCards(w io.Writer, donors []engine.Donor) error {
	enc := vcard.NewEncoder(w)
	for _, d := range donors {
		if err := enc.Encode(donorCard(d)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrExportVCard, err)
		}
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFormat, "vcard",
		config.LogKeyCount, len(donors))
	return nil
}

func donorCard(d engine.Donor) vcard.Card {
	card := make(vcard.Card)

	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = config.FallbackName
	}
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetValue(vcard.FieldUID, d.UID())
	card.SetValue(vcard.FieldOrganization, config.OrgName)

	if mobile := strings.TrimSpace(d.Mobile); mobile != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  mobile,
			Params: vcard.Params{vcard.ParamType: []string{vcard.TypeCell}},
		})
	}
	if group := strings.TrimSpace(d.Group); group != "" {
		card.SetValue(vcard.FieldCategories, group)
	}
	if location := strings.TrimSpace(d.Location); location != "" {
		card.SetValue(vcard.FieldNote, fmt.Sprintf(config.FormatNoteLocation, location))
	}

	// Sets VERSION, which the encoder requires.
	vcard.ToV4(card)
	return card
}
