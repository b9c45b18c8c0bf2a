package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/x-xyz/hbarmarket/base/units"
	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/listing"
)

func parseListingId(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 10)
	if !ok || id.Sign() < 0 {
		return nil, domain.NewUserError(domain.ErrBadParamInput, "Invalid listing id", nil)
	}
	return id, nil
}

func newListingsCmd(s *session) *cobra.Command {
	var mine bool
	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse the valid marketplace listings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				views []listing.View
				err   error
			)
			if mine {
				views, err = s.app.Listing.Mine(s.c)
			} else {
				views, err = s.app.Listing.List(s.c)
			}
			if err != nil {
				return err
			}
			return s.out.result(views, func() {
				if len(views) == 0 {
					s.out.warn.Fprintln(s.out.w, "No listings found")
					return
				}
				rows := make([][]string, 0, len(views))
				for _, v := range views {
					rows = append(rows, []string{
						v.ListingId.String(),
						string(v.AssetContract),
						v.TokenId.String(),
						v.Quantity.String(),
						v.Price,
						v.Status.String(),
						actions(v),
					})
				}
				s.out.table("ID\tCONTRACT\tTOKEN\tQTY\tPRICE\tSTATUS\tACTIONS", rows)
			})
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "Only listings created by the connected account")
	return cmd
}

func actions(v listing.View) string {
	switch {
	case v.CanCancel:
		return "cancel"
	case v.CanBuy:
		return "buy"
	case len(v.BuyDisabledReason) > 0:
		return v.BuyDisabledReason
	}
	return "-"
}

func newListingCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listing",
		Short: "Inspect, create, buy or cancel one listing",
	}
	cmd.AddCommand(
		newListingGetCmd(s),
		newListingCreateCmd(s),
		newListingBuyCmd(s),
		newListingCancelCmd(s),
	)
	return cmd
}

func newListingGetCmd(s *session) *cobra.Command {
	var quantity int64
	cmd := &cobra.Command{
		Use:   "get <listingId>",
		Short: "Show one listing and the total for a quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingId(args[0])
			if err != nil {
				return err
			}
			v, err := s.app.Listing.Get(s.c, id)
			if err != nil {
				return err
			}
			total, err := listing.TotalPrice(v.PricePerToken, big.NewInt(quantity), v.Quantity)
			if err != nil {
				return err
			}
			return s.out.result(v, func() {
				s.out.field("listing", v.ListingId)
				s.out.field("contract", v.AssetContract)
				s.out.field("token", v.TokenId)
				s.out.field("seller", v.ListingCreator)
				s.out.field("quantity", v.Quantity)
				s.out.field("price", v.Price+" HBAR")
				s.out.field("status", v.Status)
				s.out.field(fmt.Sprintf("total x%d", quantity), units.FormatNative(total)+" HBAR")
				if len(v.BuyDisabledReason) > 0 {
					s.out.warn.Fprintln(s.out.w, v.BuyDisabledReason)
				}
			})
		},
	}
	cmd.Flags().Int64VarP(&quantity, "quantity", "q", 1, "Quantity to price")
	return cmd
}

func newListingCreateCmd(s *session) *cobra.Command {
	p := listing.CreateParams{}
	cmd := &cobra.Command{
		Use:   "create <assetContract> <tokenId> <price>",
		Short: "List one token for a per token price in HBAR",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.AssetContract = domain.Address(args[0]).ToLower()
			p.TokenId = args[1]
			p.Price = args[2]
			res, err := s.app.Listing.Create(s.c, p)
			if err != nil {
				return err
			}
			return s.out.result(res, func() {
				s.out.outcome(res.Approval)
				s.out.outcome(res.Listing)
			})
		},
	}
	cmd.Flags().BoolVar(&p.AutoApprove, "approve", false, "Grant marketplace approval first when missing")
	addWaitFlag(cmd.Flags(), &p.Wait)
	return cmd
}

func newListingBuyCmd(s *session) *cobra.Command {
	var quantity int64
	p := listing.BuyParams{}
	cmd := &cobra.Command{
		Use:   "buy <listingId>",
		Short: "Buy from a listing paying HBAR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingId(args[0])
			if err != nil {
				return err
			}
			p.ListingId = id
			p.Quantity = big.NewInt(quantity)
			o, err := s.app.Listing.Buy(s.c, p)
			if err != nil {
				return err
			}
			return s.out.result(o, func() { s.out.outcome(o) })
		},
	}
	cmd.Flags().Int64VarP(&quantity, "quantity", "q", 1, "Quantity to buy")
	addWaitFlag(cmd.Flags(), &p.Wait)
	return cmd
}

func newListingCancelCmd(s *session) *cobra.Command {
	var wait bool
	cmd := &cobra.Command{
		Use:   "cancel <listingId>",
		Short: "Cancel a listing created by the connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseListingId(args[0])
			if err != nil {
				return err
			}
			o, err := s.app.Listing.Cancel(s.c, id, wait)
			if err != nil {
				return err
			}
			return s.out.result(o, func() { s.out.outcome(o) })
		},
	}
	addWaitFlag(cmd.Flags(), &wait)
	return cmd
}
