package scrape

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/max2697/SXSW-for-agents/internal/event"
)

// ParseSchedule extracts event records from a schedule page using the
// streaming tokenizer. Cards look like:
//
//	<div class="event-card" data-id="E1" data-date="2026-03-14"
//	     data-start="2026-03-14T10:00:00-05:00" data-end="..."
//	     data-category="Panel" data-type="panel">
//	  <h3 class="event-name">AI and the Future</h3>
//	  <span class="event-venue">Austin Convention Center</span>
//	  <span class="event-speaker" data-role="speaker">Jane Doe</span>
//	</div>
//
// A new card flushes the previous one; cards without an id are dropped.
// Captured elements may contain inline markup; text fragments accumulate
// until the end tag of the element that opened the capture.
func ParseSchedule(body io.Reader) ([]event.Event, error) {
	tokenizer := html.NewTokenizer(body)

	var events []event.Event
	var current *event.Event
	var buf strings.Builder
	capture := ""    // which child text we are collecting, if any
	captureTag := "" // tag name that opened the capture
	role := ""       // data-role of the speaker element being captured

	flush := func() {
		if current != nil && current.ID != "" {
			events = append(events, *current)
		}
		current = nil
	}
	resetCapture := func() {
		capture = ""
		captureTag = ""
		role = ""
		buf.Reset()
	}

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				flush()
				return events, nil
			}
			return nil, tokenizer.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			attrs := attrMap(token)
			class := attrs["class"]

			switch {
			case hasClass(class, "event-card"):
				resetCapture()
				flush()
				current = &event.Event{
					ID:        attrs["data-id"],
					Category:  attrs["data-category"],
					EventType: attrs["data-type"],
					StartTime: attrs["data-start"],
					EndTime:   attrs["data-end"],
					Date:      attrs["data-date"],
				}
				if current.Date == "" {
					current.Date = event.UnknownDate
				}
			case tokenType == html.SelfClosingTagToken || current == nil || capture != "":
				// Self-closing elements carry no text; inline markup
				// inside a capture keeps the capture open.
			case hasClass(class, "event-name"):
				capture, captureTag = "name", token.Data
			case hasClass(class, "event-venue"):
				capture, captureTag = "venue", token.Data
			case hasClass(class, "event-speaker"):
				capture, captureTag = "speaker", token.Data
				role = attrs["data-role"]
			}

		case html.TextToken:
			if current == nil || capture == "" {
				continue
			}
			text := strings.Join(strings.Fields(tokenizer.Token().Data), " ")
			if text == "" {
				continue
			}
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(text)

		case html.EndTagToken:
			if capture == "" || tokenizer.Token().Data != captureTag {
				continue
			}
			text := buf.String()
			switch capture {
			case "name":
				current.Name = text
			case "venue":
				current.VenueName = text
			case "speaker":
				if text != "" {
					current.Contributors = append(current.Contributors, event.Contributor{Name: text, Type: role})
				}
			}
			resetCapture()
		}
	}
}

func attrMap(token html.Token) map[string]string {
	attrs := make(map[string]string, len(token.Attr))
	for _, attr := range token.Attr {
		attrs[attr.Key] = attr.Val
	}
	return attrs
}

func hasClass(classAttr, class string) bool {
	for _, c := range strings.Fields(classAttr) {
		if c == class {
			return true
		}
	}
	return false
}
