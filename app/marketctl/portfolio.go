package main

import (
	"github.com/spf13/cobra"

	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/portfolio"
)

func newPortfolioCmd(s *session) *cobra.Command {
	var owner, contract string
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "List owned tokens by probing the configured id range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := s.app.Provider.Address()
			if len(owner) > 0 {
				o = domain.Address(owner).ToLower()
			}
			var (
				tokens []portfolio.OwnedToken
				err    error
			)
			if len(contract) > 0 {
				tokens, err = s.app.Portfolio.Scan(s.c, o, domain.Address(contract).ToLower())
			} else {
				tokens, err = s.app.Portfolio.ScanAll(s.c, o)
			}
			if err != nil {
				return err
			}
			return s.out.result(tokens, func() {
				if len(tokens) == 0 {
					s.out.warn.Fprintln(s.out.w, "No NFTs found")
					return
				}
				rows := make([][]string, 0, len(tokens))
				for i := range tokens {
					t := &tokens[i]
					rows = append(rows, []string{
						string(t.ContractAddress),
						t.TokenId.String(),
						t.DisplayName(),
						t.DisplayDescription(),
						t.ImageUrl,
					})
				}
				s.out.table("CONTRACT\tTOKEN\tNAME\tDESCRIPTION\tIMAGE", rows)
			})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "Owner to scan, defaults to the connected account")
	cmd.Flags().StringVar(&contract, "contract", "", "Scan one contract instead of every configured one")
	return cmd
}
