package main

import (
	"fmt"

	"github.com/spf13/cobra"

	slotRepo "github.com/m04kA/SMC-CallCenterService/internal/infra/storage/slot"
	slotsService "github.com/m04kA/SMC-CallCenterService/internal/service/slots"
	"github.com/m04kA/SMC-CallCenterService/internal/service/slots/models"
	"github.com/m04kA/SMC-CallCenterService/pkg/dbmetrics"
)

var createSlotFlags models.CreateSlotRequest

var createSlotCmd = &cobra.Command{
	Use:   "create-slot",
	Short: "Create an appointment slot without going through the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Close()

		db, err := openDB(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := slotsService.NewService(slotRepo.NewRepository(dbmetrics.Wrap(db, nil)), log)

		created, err := svc.CreateSlot(cmd.Context(), &createSlotFlags)
		if err != nil {
			return fmt.Errorf("create slot: %w", err)
		}

		cmd.Printf("slot created: queue=%s date=%s time=%s total=%d\n",
			created.QueueName, created.Date, created.Time, created.Total)
		return nil
	},
}

func init() {
	f := createSlotCmd.Flags()
	f.StringVar(&createSlotFlags.Date, "date", "", "slot date, YYYY-MM-DD")
	f.StringVar(&createSlotFlags.Time, "time", "", "slot time range, HH:MM-HH:MM")
	f.StringVar(&createSlotFlags.QueueName, "queue", "", "queue name")
	f.IntVar(&createSlotFlags.Total, "total", 0, "slot capacity")
	_ = createSlotCmd.MarkFlagRequired("date")
	_ = createSlotCmd.MarkFlagRequired("time")
	_ = createSlotCmd.MarkFlagRequired("queue")
	_ = createSlotCmd.MarkFlagRequired("total")

	rootCmd.AddCommand(createSlotCmd)
}
