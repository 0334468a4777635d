package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPNotifier sends mail through a plain SMTP relay. The dial respects the
// caller's context so a dead relay cannot hold a submission goroutine.
type SMTPNotifier struct {
	addr string
	from string
	to   []string
}

// NewSMTP builds a notifier for the relay at addr (host:port).
func NewSMTP(addr, from string, to []string) *SMTPNotifier {
	return &SMTPNotifier{addr: addr, from: from, to: to}
}

// Send delivers msg to every configured recipient.
func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	if len(n.to) == 0 {
		return nil
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", n.addr)
	if err != nil {
		return fmt.Errorf("notify: dial %s: %w", n.addr, err)
	}

	host := n.addr
	if h, _, splitErr := net.SplitHostPort(n.addr); splitErr == nil {
		host = h
	}

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("notify: smtp handshake: %w", err)
	}
	defer client.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if err := client.Mail(n.from); err != nil {
		return fmt.Errorf("notify: mail from: %w", err)
	}
	for _, rcpt := range n.to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("notify: rcpt %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("notify: data: %w", err)
	}
	_, err = fmt.Fprintf(w, "From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.from, strings.Join(n.to, ", "), msg.Subject, msg.Body)
	if err != nil {
		w.Close()
		return fmt.Errorf("notify: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("notify: close body: %w", err)
	}

	return client.Quit()
}
