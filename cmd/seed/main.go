package main

import (
	"fmt"
	"os"

	"carteira/internal/config"
	"carteira/internal/database"
	"carteira/internal/datagen"
	"carteira/internal/logger"
	"carteira/internal/seed"
	"carteira/internal/services"

	"github.com/spf13/cobra"
)

var (
	seedClientes  int
	seedAcoes     int
	seedAlocacoes int
	seedValue     uint64
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Errorf("Seed error: %v", err)
		logger.Sync()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with generated customers, assets and allocations",
		Long: `seed inserts fake but valid records through the same services the API
uses. Records that collide with existing ones are skipped and counted.

Example:
  seed --clientes 50 --acoes 20 --alocacoes 200 --seed 42`,
		Args:          cobra.NoArgs,
		RunE:          runSeed,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&seedClientes, "clientes", 10, "number of customers to create")
	cmd.Flags().IntVar(&seedAcoes, "acoes", 10, "number of assets to create")
	cmd.Flags().IntVar(&seedAlocacoes, "alocacoes", 30, "number of allocations to create")
	cmd.Flags().Uint64Var(&seedValue, "seed", 0, "random seed (0 picks one from the clock)")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedClientes < 0 || seedAcoes < 0 || seedAlocacoes < 0 {
		return fmt.Errorf("counts must not be negative")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	faker := datagen.NewFaker()
	if seedValue != 0 {
		faker = datagen.NewFakerWithSeed(seedValue)
	}

	db := dbManager.DB()
	seeder := seed.NewSeeder(faker,
		services.NewClienteService(db),
		services.NewAcaoService(db),
		services.NewAlocacaoService(db),
	)

	res, err := seeder.Run(cmd.Context(), seed.Counts{
		Clientes:  seedClientes,
		Acoes:     seedAcoes,
		Alocacoes: seedAlocacoes,
	})
	if err != nil {
		return err
	}

	logger.Get().Infow("seed complete",
		"clientes_created", res.Created.Clientes,
		"clientes_skipped", res.Skipped.Clientes,
		"acoes_created", res.Created.Acoes,
		"acoes_skipped", res.Skipped.Acoes,
		"alocacoes_created", res.Created.Alocacoes,
		"alocacoes_skipped", res.Skipped.Alocacoes,
	)
	return nil
}
