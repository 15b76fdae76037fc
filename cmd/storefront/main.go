// Command storefront is a terminal front end for the electronic store. It
// browses the catalog, keeps a persistent cart and places orders.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/redis/go-redis/v9"

	"github.com/thabani29/electronic/internal/cart"
	"github.com/thabani29/electronic/internal/cart/filestore"
	"github.com/thabani29/electronic/internal/cart/redisstore"
	"github.com/thabani29/electronic/internal/catalog"
	"github.com/thabani29/electronic/internal/checkout"
	"github.com/thabani29/electronic/internal/config"
	"github.com/thabani29/electronic/pkg/httpclient"
	"github.com/thabani29/electronic/pkg/logger"
)

const usage = `usage: storefront <command> [args]

commands:
  products              list the product catalog
  show <id>             show one product
  add <id> [qty]        add a product to the cart
  rm <product-id>       remove a product from the cart
  qty <product-id> <n>  change a line's quantity
  cart                  print the cart
  clear                 empty the cart
  checkout              place the order
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadStorefront()
	if err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("storefront", cfg.LogLevel)
	ctx := context.Background()

	store, err := newCartStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}

	engine := cart.NewEngine(ctx, store, log)

	client := httpclient.NewCircuitBreakerClient(
		httpclient.New(httpclient.DefaultConfig()),
		httpclient.DefaultCircuitBreakerConfig("store-api"),
		log,
	)
	products := catalog.NewClient(client, cfg.APIBaseURL)
	submitter := checkout.New(client, cfg.APIBaseURL, log)

	if err := run(ctx, os.Args[1], os.Args[2:], engine, products, submitter); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func newCartStore(cfg *config.Storefront) (cart.Store, error) {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return redisstore.New(client), nil
	}

	path := cfg.CartPath
	if path == "" {
		var err error
		path, err = filestore.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return filestore.New(path), nil
}

func run(ctx context.Context, command string, args []string, engine *cart.Engine, products *catalog.Client, submitter *checkout.Submitter) error {
	switch command {
	case "products":
		return listProducts(ctx, products)
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("usage: storefront show <id>")
		}
		return showProduct(ctx, products, args[0])
	case "add":
		if len(args) < 1 || len(args) > 2 {
			return fmt.Errorf("usage: storefront add <id> [qty]")
		}
		return addToCart(ctx, engine, products, args)
	case "rm":
		if len(args) != 1 {
			return fmt.Errorf("usage: storefront rm <product-id>")
		}
		engine.Remove(ctx, args[0])
		return printCart(engine)
	case "qty":
		if len(args) != 2 {
			return fmt.Errorf("usage: storefront qty <product-id> <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		engine.UpdateQty(ctx, args[0], n)
		return printCart(engine)
	case "cart":
		return printCart(engine)
	case "clear":
		engine.Clear(ctx)
		fmt.Println("Cart cleared")
		return nil
	case "checkout":
		res := submitter.Submit(ctx, engine)
		fmt.Println(res.Message)
		if !res.OK && res.Message != checkout.MsgEmptyCart {
			os.Exit(1)
		}
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func listProducts(ctx context.Context, client *catalog.Client) error {
	items, err := client.List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
	for _, p := range items {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\n", p.ProductID, p.Name, p.Price, p.Stock)
	}
	return w.Flush()
}

func showProduct(ctx context.Context, client *catalog.Client, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", rawID)
	}

	p, err := client.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (#%d)\n", p.Name, p.ProductID)
	if p.Description != "" {
		fmt.Println(p.Description)
	}
	fmt.Printf("Price: %.2f\nStock: %d\n", p.Price, p.Stock)
	if p.Image != "" {
		fmt.Printf("Image: %s\n", p.Image)
	}
	return nil
}

func addToCart(ctx context.Context, engine *cart.Engine, client *catalog.Client, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	qty := 1
	if len(args) == 2 {
		qty, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
	}

	p, err := client.Get(ctx, id)
	if err != nil {
		return err
	}

	line, ok := cart.NewLine(p.ProductID, p.Name, p.Image, p.Price, qty)
	if !ok {
		return fmt.Errorf("product %d has no usable id", id)
	}
	engine.Add(ctx, line)
	return printCart(engine)
}

func printCart(engine *cart.Engine) error {
	lines := engine.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%.2f\n", l.ProductID, l.Name, l.Price, l.Qty, l.Price*float64(l.Qty))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("Items: %d  Total: %s\n", engine.TotalItems(), engine.TotalPrice())
	return nil
}
