package main

import (
	"github.com/spf13/cobra"

	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/approval"
)

func newApprovalCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approval",
		Short: "Check or grant marketplace approval for an NFT contract",
	}

	printGate := func(g *approval.Gate) {
		if g.CanList() {
			s.out.success.Fprintln(s.out.w, "✔ marketplace approved")
		} else {
			s.out.warn.Fprintln(s.out.w, "marketplace not approved, listing is blocked")
		}
		s.out.field("asset", g.Asset)
		s.out.field("operator", g.Operator)
		s.out.field("state", g.State)
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <assetContract>",
		Short: "Query isApprovedForAll for the marketplace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := s.app.Approval.Check(s.c, domain.Address(args[0]).ToLower())
			if err != nil {
				return err
			}
			return s.out.result(g, func() { printGate(g) })
		},
	}, &cobra.Command{
		Use:   "grant <assetContract>",
		Short: "Send setApprovalForAll for the marketplace when missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.app.Approval.Approve(s.c, domain.Address(args[0]).ToLower())
			if err != nil {
				return err
			}
			return s.out.result(res, func() {
				s.out.outcome(res.Outcome)
				printGate(res.Gate)
			})
		},
	})
	return cmd
}
