package main

import (
	"github.com/spf13/cobra"

	"github.com/x-xyz/hbarmarket/domain"
)

func newTxCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tx <hash>",
		Short: "Show a recorded transaction outcome",
		Long:  "Outcomes outlive the process only when a redis cache is configured.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := s.app.Txn.Get(s.c, domain.TxHash(args[0]))
			if err != nil {
				return err
			}
			return s.out.result(o, func() { s.out.outcome(o) })
		},
	}
}
