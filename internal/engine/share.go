package engine

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-yourage/internal/config"
	"github.com/teambition/rrule-go"
)

// ErrIncompleteShare is returned when an export is requested without a name
// or without a valid birthday.
var ErrIncompleteShare = errors.New(config.ErrIncomplete)

// EncodeVCard exports p as a vCard 4.0 contact carrying FN and BDAY.
func EncodeVCard(p QueryParams) ([]byte, error) {
	if p.Name == "" || p.Birthday.IsZero() {
		return nil, ErrIncompleteShare
	}

	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, p.Name)
	card.SetValue(vcard.FieldBirthday, p.Birthday.String())
	vcard.ToV4(card)

	var buf bytes.Buffer
	if err := vcard.NewEncoder(&buf).Encode(card); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return buf.Bytes(), nil
}

// EncodeICal exports p as a calendar holding one all-day event that repeats
// yearly on the birthday. now stamps DTSTAMP.
func EncodeICal(p QueryParams, now time.Time) ([]byte, error) {
	if p.Name == "" || p.Birthday.IsZero() {
		return nil, ErrIncompleteShare
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, shareUID(p))
	event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatSummary, p.Name))

	// All-day value: the birthday is a calendar date, not an instant.
	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(p.Birthday.Midnight(time.UTC))
	event.Props.Set(dtStart)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())
	event.Props.Set(dtStamp)

	event.Props.SetRecurrenceRule(&rrule.ROption{Freq: rrule.YEARLY})

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// shareUID is deterministic so re-imports update the same event.
func shareUID(p QueryParams) string {
	input := fmt.Sprintf(config.FormatHashInput, p.Name, p.Birthday)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
