package gmail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// OutgoingMessage is a message sent from a connected mailbox.
type OutgoingMessage struct {
	From      string
	To        string
	Subject   string
	Text      string
	HTML      string
	InReplyTo string
	ThreadID  string
}

// InboundMessage is a parsed message fetched from a connected mailbox.
type InboundMessage struct {
	ExternalID string
	ThreadID   string
	MessageID  string
	From       string
	FromName   string
	To         string
	Subject    string
	Text       string
	Headers    map[string]string
	ReceivedAt time.Time
}

var keptHeaders = []string{"Message-Id", "In-Reply-To", "References", "Auto-Submitted", "List-Id", "Precedence"}

func composeMIME(msg OutgoingMessage, now time.Time) ([]byte, error) {
	from, err := mail.ParseAddress(msg.From)
	if err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	to, err := mail.ParseAddress(msg.To)
	if err != nil {
		return nil, fmt.Errorf("invalid to address: %w", err)
	}

	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{from})
	h.SetAddressList("To", []*mail.Address{to})
	h.SetSubject(msg.Subject)
	if msg.InReplyTo != "" {
		h.Set("In-Reply-To", msg.InReplyTo)
		h.Set("References", msg.InReplyTo)
	}

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create message writer: %w", err)
	}
	iw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("failed to create inline writer: %w", err)
	}
	if err := writeInlinePart(iw, "text/plain", msg.Text); err != nil {
		return nil, err
	}
	if msg.HTML != "" {
		if err := writeInlinePart(iw, "text/html", msg.HTML); err != nil {
			return nil, err
		}
	}
	if err := iw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close inline writer: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close message writer: %w", err)
	}
	return buf.Bytes(), nil
}

func writeInlinePart(iw *mail.InlineWriter, contentType, body string) error {
	var ph mail.InlineHeader
	ph.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	w, err := iw.CreatePart(ph)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", contentType, err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("failed to write %s part: %w", contentType, err)
	}
	return w.Close()
}

func parseMIME(raw []byte) (InboundMessage, error) {
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return InboundMessage{}, fmt.Errorf("failed to read message: %w", err)
	}
	defer mr.Close()

	var msg InboundMessage
	msg.Subject, _ = mr.Header.Subject()
	msg.MessageID = mr.Header.Get("Message-Id")
	if from, err := mr.Header.AddressList("From"); err == nil && len(from) > 0 {
		msg.From = strings.ToLower(from[0].Address)
		msg.FromName = from[0].Name
	}
	if to, err := mr.Header.AddressList("To"); err == nil && len(to) > 0 {
		msg.To = strings.ToLower(to[0].Address)
	}
	if date, err := mr.Header.Date(); err == nil {
		msg.ReceivedAt = date
	}
	msg.Headers = make(map[string]string)
	for _, k := range keptHeaders {
		if v := mr.Header.Get(k); v != "" {
			msg.Headers[k] = v
		}
	}

	var html string
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return msg, fmt.Errorf("failed to read message part: %w", err)
		}
		ih, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		contentType, _, _ := ih.ContentType()
		body, err := io.ReadAll(part.Body)
		if err != nil {
			return msg, fmt.Errorf("failed to read message body: %w", err)
		}
		switch contentType {
		case "text/plain":
			if msg.Text == "" {
				msg.Text = string(body)
			}
		case "text/html":
			if html == "" {
				html = string(body)
			}
		}
	}
	if msg.Text == "" && html != "" {
		msg.Text = stripTags(html)
	}
	msg.Text = strings.TrimSpace(msg.Text)
	return msg, nil
}

func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteByte(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
