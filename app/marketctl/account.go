package main

import (
	"github.com/spf13/cobra"
)

func newAccountCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the connected account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := s.app.Account.Get(s.c)
			if err != nil {
				return err
			}
			return s.out.result(info, func() {
				s.out.field("address", info.Address)
				s.out.field("chain id", info.ChainId)
				s.out.field("project", info.ProjectId)
				s.out.field("balance", info.Balance+" HBAR")
			})
		},
	}
}
