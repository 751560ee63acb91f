// Package console is the interactive command loop: shop configuration is
// added and removed here, and `qu` initiates shutdown. Diagnostics are
// printed straight to the operator rather than logged.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"landshop/internal/domain/entity"
	"landshop/internal/domain/value"
)

// ItemStore is the mutable side of the store the console owns: the gateway
// goroutine only ever reads items.
type ItemStore interface {
	Get(id uuid.UUID) (entity.ShopItem, bool)
	Upsert(item entity.ShopItem) error
	Remove(id uuid.UUID) error
}

type Console struct {
	items ItemStore
	in    io.Reader
	out   io.Writer
}

func New(items ItemStore, in io.Reader, out io.Writer) *Console {
	return &Console{
		items: items,
		in:    in,
		out:   out,
	}
}

const menu = `-> qu                                                        quit
-> ad <notifier> <remoter> <currency:amount,...> <display...>  add a shop item
-> rm <notifier>                                               remove a shop item`

// Run reads commands until `qu` or end of input. Returning hands control
// back to main, which cancels the root context and joins the gateway.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out, menu)

		if !scanner.Scan() {
			return scanner.Err()
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "qu":
			fmt.Fprintln(c.out, "shutting down...")
			return nil
		case "ad":
			c.cmdAdd(args)
		case "rm":
			c.cmdRemove(args)
		default:
			fmt.Fprintf(c.out, "unknown command %q\n", args[0])
		}
	}
}

func (c *Console) cmdAdd(args []string) {
	if len(args) < 5 {
		fmt.Fprintln(c.out, "ad needs at least 4 arguments")
		return
	}

	notifierID, err := uuid.Parse(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "notifier key is not valid")
		return
	}

	remoterID, err := uuid.Parse(args[2])
	if err != nil {
		fmt.Fprintln(c.out, "remoter key is not valid")
		return
	}

	if args[3] == "" {
		fmt.Fprintln(c.out, "prices must not be empty")
		return
	}

	prices, malformed := value.ParsePriceSpec(args[3])
	for _, entry := range malformed {
		// Reported but not blocking, matching the add semantics.
		fmt.Fprintf(c.out, "malformed price entry %q\n", entry)
	}

	if _, ok := c.items.Get(notifierID); ok {
		fmt.Fprintf(c.out, "shop %s already exists\n", notifierID)
		return
	}

	item := entity.ShopItem{
		NotifierID: notifierID,
		RemoterID:  remoterID,
		Prices:     prices,
		Display:    url.QueryEscape(strings.Join(args[4:], " ")),
	}

	if err := c.items.Upsert(item); err != nil {
		fmt.Fprintf(c.out, "failed to add shop %s: %v\n", notifierID, err)
		return
	}

	fmt.Fprintf(c.out, "shop %s added\n", notifierID)
}

func (c *Console) cmdRemove(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.out, "rm needs at least 1 argument")
		return
	}

	notifierID, err := uuid.Parse(args[1])
	if err != nil {
		fmt.Fprintln(c.out, "notifier key is not valid")
		return
	}

	if _, ok := c.items.Get(notifierID); !ok {
		fmt.Fprintf(c.out, "shop %s does not exist\n", notifierID)
		return
	}

	if err := c.items.Remove(notifierID); err != nil {
		fmt.Fprintf(c.out, "failed to remove shop %s: %v\n", notifierID, err)
		return
	}

	fmt.Fprintf(c.out, "shop %s removed\n", notifierID)
}
