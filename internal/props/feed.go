package props

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// Feed reads property updates from r, one per line, until EOF or ctx is done:
//
//	user <key> <value...>
//	general fps <n>
//
// Blank lines and lines starting with # are skipped. Lines that do not parse
// are ignored.
func (l *Listener) Feed(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.feedLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read properties: %w", err)
	}
	return nil
}

func (l *Listener) feedLine(text string) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return
	}

	kind, rest, _ := strings.Cut(text, " ")
	key, value, _ := strings.Cut(strings.TrimSpace(rest), " ")
	update := map[string]string{key: strings.TrimSpace(value)}

	switch strings.ToLower(kind) {
	case "user":
		l.ApplyUserProperties(update)
	case "general":
		l.ApplyGeneralProperties(update)
	default:
		if l.Verbose {
			log.Printf("props: unknown update %q", text)
		}
	}
}
