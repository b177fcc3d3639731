package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ethereum/go-ethereum/common"
)

// Renderer prints the form to a terminal.
type Renderer struct {
	w io.Writer

	title   *color.Color
	ok      *color.Color
	warn    *color.Color
	fail    *color.Color
	dim     *color.Color
	pending *color.Color
}

// NewRenderer writes to w. Colors are only emitted if useColor is set.
func NewRenderer(w io.Writer, useColor bool) *Renderer {
	r := &Renderer{
		w:       w,
		title:   color.New(color.Bold, color.FgCyan),
		ok:      color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		dim:     color.New(color.Faint),
		pending: color.New(color.FgBlue),
	}
	for _, c := range []*color.Color{r.title, r.ok, r.warn, r.fail, r.dim, r.pending} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) Render(f *Form) {
	chain := f.Chain()
	if chain == nil {
		r.fail.Fprintln(r.w, "No networks configured")
		return
	}
	r.title.Fprintf(r.w, "Token Faucet\n")
	r.dim.Fprintf(r.w, "Get testnet tokens for %s\n\n", chain.Name)

	addr, valid := f.Address()
	switch {
	case addr == "":
		r.dim.Fprintln(r.w, "Address: 0x...")
	case valid:
		fmt.Fprintf(r.w, "Address: %s %s\n", addr, r.ok.Sprint("✓"))
	default:
		fmt.Fprintf(r.w, "Address: %s %s\n", addr, r.fail.Sprint("✗"))
		r.warn.Fprintln(r.w, f.AddressHint())
	}
	fmt.Fprintln(r.w)

	for _, tok := range f.Tokens() {
		action := "Get " + tok.Amount
		switch {
		case f.Pending(tok.Symbol):
			action = r.pending.Sprint("Requesting...")
		case f.CanRequest(tok.Symbol):
			action = r.ok.Sprint(action)
		default:
			action = r.dim.Sprint(action)
		}
		fmt.Fprintf(r.w, "  %-8s %-24s %s\n", tok.Symbol, tok.Name, action)
	}

	r.RenderStatus(f.Status())
	r.dim.Fprintf(r.w, "\nTestnet: %s • Please use responsibly\n", chain.Name)
}

func (r *Renderer) RenderStatus(st Status) {
	if st.Message == "" {
		return
	}
	fmt.Fprintln(r.w)
	switch st.Kind {
	case StatusSuccess:
		r.ok.Fprintln(r.w, st.Message)
	case StatusCooldown:
		r.warn.Fprintln(r.w, st.Message)
	case StatusError:
		r.fail.Fprintln(r.w, st.Message)
	case StatusPending:
		r.pending.Fprintln(r.w, st.Message)
	default:
		fmt.Fprintln(r.w, st.Message)
	}
	if st.ExplorerURL != "" {
		fmt.Fprintf(r.w, "View transaction: %s\n", st.ExplorerURL)
	} else if st.TxHash != (common.Hash{}) {
		fmt.Fprintf(r.w, "Transaction: %s\n", st.TxHash)
	}
}
