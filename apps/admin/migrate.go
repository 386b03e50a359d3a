package main

import (
	"github.com/pressly/goose/v3"

	"github.com/connectingcampuses/backend/storage/database/migrations"
)

func (cli *commandLine) migrate(args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Run(command, cli.db, ".", args[1:]...)
}
