package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/dish-ranking-api/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas, índices e gatilhos do Record Store",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	if err := migration.Migrate(ctx, s.runner, s.dialect); err != nil {
		return err
	}

	logrus.WithField("dialect", s.dialect.Name).Info("Migração concluída")
	return nil
}
