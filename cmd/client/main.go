// Command client is a small CLI for the library API. It logs in, then runs
// one catalog or circulation action against the server.
//
// Examples:
//
//	client -a localhost:8080 -email member@library.com -password 'SecureMem123!' -action list
//	client -a localhost:8080 -email member@library.com -password 'SecureMem123!' -action checkout -id 1
//	client -a localhost:8080 -email librarian@library.com -password 'SecureLib123!' -action create -title 'Clean Code' -author 'Robert Martin'
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/avoronov/go-library-api/internal/adapter"
	"github.com/avoronov/go-library-api/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	var (
		address  = flag.String("a", "localhost:8080", "server address host:port")
		email    = flag.String("email", "", "account email (omit for anonymous reads)")
		password = flag.String("password", "", "account password")
		action   = flag.String("action", "list", "one of: list, get, create, delete, checkout, checkin")
		bookID   = flag.Int64("id", 0, "book id for get/delete/checkout/checkin")
		title    = flag.String("title", "", "book title for create")
		author   = flag.String("author", "", "book author for create")
	)
	flag.Parse()

	log := logger.NewLogger("library-client")

	client, err := adapter.NewHTTPLibraryClient(*address, 10*time.Second, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}

	ctx := context.Background()

	if *email != "" {
		if _, err = client.Login(ctx, *email, *password); err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
	}

	if err = run(ctx, client, *action, *bookID, *title, *author); err != nil {
		log.Fatal().Err(err).Str("action", *action).Msg("action failed")
	}
}

func run(ctx context.Context, client adapter.LibraryClient, action string, id int64, title, author string) error {
	switch action {
	case "list":
		books, err := client.ListBooks(ctx)
		if err != nil {
			return err
		}
		for _, book := range books {
			status := "available"
			if !book.IsAvailable {
				status = "checked out"
			}
			fmt.Printf("%d\t%s by %s\t[%s]\n", book.ID, book.Title, book.Author, status)
		}
		return nil

	case "get":
		book, err := client.GetBook(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%d\t%s by %s\tavailable=%v\n", book.ID, book.Title, book.Author, book.IsAvailable)
		return nil

	case "create":
		book, err := client.CreateBook(ctx, title, author)
		if err != nil {
			return err
		}
		fmt.Printf("created book %d: %s\n", book.ID, book.Title)
		return nil

	case "delete":
		if err := client.DeleteBook(ctx, id); err != nil {
			return err
		}
		fmt.Printf("deleted book %d\n", id)
		return nil

	case "checkout":
		msg, err := client.CheckoutBook(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	case "checkin":
		msg, err := client.CheckinBook(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println(msg)
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
