package cli

import (
	"context"
	"fmt"
	"os"
)

// Plans prints the subscription catalog.
func (a *App) Plans(ctx context.Context) error {
	for _, p := range a.billing.Plans() {
		printlnFn(fmt.Sprintf("  %-10s %s / %s", p.Name, p.Price, p.Period))
	}
	return nil
}

// Subscribe prompts for a plan name, requests a hosted checkout session and
// hands the user off to the browser. On any error the user stays in the
// shell; there is never a hand-off without a URL.
func (a *App) Subscribe(ctx context.Context) error {
	plan, err := getSimpleText(a.reader, "Enter plan name (see 'plans')", os.Stdout)
	if err != nil {
		return err
	}

	url, err := a.billing.Checkout(ctx, plan)
	if err != nil {
		printErr(err)
		return err
	}

	return a.handOff(ctx, url)
}

// Portal requests a hosted billing-portal session and hands the user off to
// the browser.
func (a *App) Portal(ctx context.Context) error {
	url, err := a.billing.Portal(ctx)
	if err != nil {
		printErr(err)
		return err
	}

	return a.handOff(ctx, url)
}

// handOff opens the provider URL in the browser. The URL is always printed
// first so the flow survives environments without a browser.
func (a *App) handOff(ctx context.Context, url string) error {
	printlnFn("Continue in your browser:", url)
	if err := openBrowser(url); err != nil {
		a.log.Warn(ctx, "could not launch browser", "err", err)
	}
	return nil
}
