package main

import (
	"context"
	"log"
	"os"

	"github.com/tmm-dev/tmm/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "TM Assembler front end"
	app.Description = "Tokenizes and parses TM assembly sources"
	app.Commands = []*cli.Command{
		cmd.ParseCommand,
		cmd.RunCommand,
		cmd.ReplCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
