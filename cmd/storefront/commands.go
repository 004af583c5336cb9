package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jrsteele09/go-storefront-client/api"
	"github.com/jrsteele09/go-storefront-client/cart"
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/sessions"
	"github.com/jrsteele09/go-storefront-client/storefront"
	"github.com/jrsteele09/go-storefront-client/users"
)

var errUsage = errors.New("usage")

type command struct {
	usage string
	run   func(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"login":       {usage: "login EMAIL PASSWORD", run: loginCmd},
		"register":    {usage: "register NAME EMAIL PASSWORD [--role admin]", run: registerCmd},
		"products":    {usage: "products", run: productsCmd},
		"cart":        {usage: "cart", run: cartCmd},
		"cart-set":    {usage: "cart-set SERVICE_ID QUANTITY", run: cartSetCmd},
		"cart-remove": {usage: "cart-remove SERVICE_ID", run: cartRemoveCmd},
		"navigate":    {usage: "navigate PATH", run: navigateCmd},
		"status":      {usage: "status", run: statusCmd},
		"logout":      {usage: "logout", run: logoutCmd},
	}
}

func printUsage(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "Usage: storefront COMMAND [ARGS]")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", commands[name].usage)
	}
}

func dispatch(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	cmd, ok := commands[args[0]]
	if !ok {
		printUsage(w)
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return cmd.run(ctx, sf, w, args[1:])
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s", errUsage, usage)
	}
	return nil
}

func loginCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	if err := wantArgs(args, 2, commands["login"].usage); err != nil {
		return err
	}
	resp, err := sf.API.Login(ctx, api.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Logged in as %s (%s)\n", resp.User.DisplayName(), resp.User.Role)
	return sf.Cart.Refresh(ctx)
}

func registerCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(w)
	role := fs.String("role", string(users.RoleClient), "role of the new account (client or admin)")
	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := wantArgs(positional, 3, commands["register"].usage); err != nil {
		return err
	}

	reg := api.Registration{Name: positional[0], Email: positional[1], Password: positional[2]}
	if !users.RoleType(strings.ToLower(strings.TrimSpace(*role))).Valid() {
		return fmt.Errorf("%w: unknown role %q", errUsage, *role)
	}
	parsed := users.ParseRole(*role)
	reg.Role = &parsed
	if parsed == users.RoleAdmin {
		// Only an admin may create another admin.
		reg.AuthToken, _ = sf.Sessions.Token(ctx)
	}

	resp, err := sf.API.Register(ctx, reg)
	if err != nil {
		return err
	}
	if resp.Message != "" {
		fmt.Fprintln(w, resp.Message)
	} else {
		fmt.Fprintf(w, "Registered %s\n", reg.Email)
	}
	return nil
}

// parseInterspersed lets flags appear after positional arguments.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

func productsCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	products, err := sf.LoadProducts(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.Price.StringFixed(2))
	}
	return tw.Flush()
}

func cartCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	if err := sf.Cart.Refresh(ctx); err != nil {
		printCart(w, sf.Cart.State())
		return err
	}
	printCart(w, sf.Cart.State())
	return nil
}

func cartSetCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	if err := wantArgs(args, 2, commands["cart-set"].usage); err != nil {
		return err
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: quantity %q is not a number", errUsage, args[1])
	}
	if err := sf.Cart.SetQuantity(ctx, catalog.ServiceID(args[0]), qty); err != nil {
		return err
	}
	printCart(w, sf.Cart.State())
	return nil
}

func cartRemoveCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	if err := wantArgs(args, 1, commands["cart-remove"].usage); err != nil {
		return err
	}
	if err := sf.Cart.RemoveItem(ctx, catalog.ServiceID(args[0])); err != nil {
		return err
	}
	printCart(w, sf.Cart.State())
	return nil
}

func printCart(w io.Writer, state cart.State) {
	if state.LastError != "" {
		fmt.Fprintln(w, state.LastError)
	}
	if state.Empty() {
		fmt.Fprintln(w, "Cart is empty")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tNAME\tQTY\tUNIT\tTOTAL")
	for _, item := range state.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			item.ServiceID, item.Name, item.Quantity, item.UnitPrice.StringFixed(2), item.LineTotal().StringFixed(2))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d item(s), total %s\n", state.ItemCount, state.TotalAmount.StringFixed(2))
}

func navigateCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	if err := wantArgs(args, 1, commands["navigate"].usage); err != nil {
		return err
	}
	nav := sf.Router.Navigate(ctx, args[0])
	if nav.Redirected {
		fmt.Fprintf(w, "%s -> %s (%s)\n", nav.Requested, nav.To, nav.Reason)
		return nil
	}
	fmt.Fprintln(w, nav.To)
	return nil
}

func statusCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	session := sf.Sessions.Current(ctx)
	if !session.Authenticated() {
		fmt.Fprintln(w, "Not logged in")
		return nil
	}
	if session.User != nil {
		fmt.Fprintf(w, "User:    %s <%s> (%s)\n", session.User.DisplayName(), session.User.Email, session.User.Role)
	} else {
		fmt.Fprintln(w, "User:    unknown")
	}
	if exp, ok := sessions.ExpiresAt(session.Token); ok {
		state := "valid"
		if time.Now().After(exp) {
			state = "expired"
		}
		fmt.Fprintf(w, "Token:   %s until %s\n", state, exp.Local().Format(time.RFC1123))
	} else {
		fmt.Fprintln(w, "Token:   no expiry information")
	}

	if err := sf.Cart.Refresh(ctx); err != nil {
		return err
	}
	state := sf.Cart.State()
	fmt.Fprintf(w, "Cart:    %d item(s), total %s\n", state.ItemCount, state.TotalAmount.StringFixed(2))
	return nil
}

func logoutCmd(ctx context.Context, sf *storefront.Storefront, w io.Writer, args []string) error {
	nav, err := sf.Logout(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Logged out, now at %s\n", nav.To)
	return nil
}
