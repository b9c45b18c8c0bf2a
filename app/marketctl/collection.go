package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x-xyz/hbarmarket/domain"
	"github.com/x-xyz/hbarmarket/domain/collection"
)

func newDeployCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the factory, an ERC-1155 contract or an NFT through the factory",
	}

	printDeploy := func(res *collection.DeployResult) {
		s.out.outcome(res.Outcome)
		if len(res.ContractAddress) > 0 {
			s.out.field("contract", res.ContractAddress)
		}
	}

	nft := collection.NftParams{}
	nftCmd := &cobra.Command{
		Use:   "nft",
		Short: "Deploy an ERC-721 collection through the factory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.app.Collection.DeployNft(s.c, nft)
			if err != nil {
				return err
			}
			return s.out.result(res, func() { printDeploy(res) })
		},
	}
	nftCmd.Flags().StringVar(&nft.Name, "name", "", "Collection name")
	nftCmd.Flags().StringVar(&nft.Symbol, "symbol", "", "Collection symbol")
	nftCmd.Flags().StringVar(&nft.BaseUri, "base-uri", "", "Token metadata base uri, e.g. ipfs://<cid>/")

	cmd.AddCommand(&cobra.Command{
		Use:   "factory",
		Short: "Sign the deploy message then deploy the NFT factory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.app.Collection.DeployFactory(s.c)
			if err != nil {
				return err
			}
			return s.out.result(res, func() { printDeploy(res) })
		},
	}, &cobra.Command{
		Use:   "erc1155",
		Short: "Sign the deploy message then deploy the game items contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.app.Collection.DeployGameItems(s.c)
			if err != nil {
				return err
			}
			return s.out.result(res, func() { printDeploy(res) })
		},
	}, nftCmd)
	return cmd
}

func newMintCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "mint <contract>",
		Short: "Mint one token to the connected account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.app.Collection.Mint(s.c, domain.Address(args[0]).ToLower())
			if err != nil {
				return err
			}
			return s.out.result(res, func() {
				s.out.outcome(res.Outcome)
				if len(res.TokenId) > 0 {
					s.out.field("token id", res.TokenId)
				}
				if len(res.Message) > 0 {
					s.out.success.Fprintln(s.out.w, res.Message)
				}
			})
		},
	}
}

func newConnectCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <address>",
		Short: "Check that a contract exists and read its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := s.app.Collection.Connect(s.c, args[0])
			if err != nil {
				return err
			}
			return s.out.result(ct, func() {
				s.out.success.Fprintln(s.out.w, "✔ contract found")
				s.out.field("address", ct.Address)
				if len(ct.Owner) > 0 {
					s.out.field("owner", ct.Owner)
				}
				if ct.TokenType != 0 {
					s.out.field("type", fmt.Sprintf("ERC-%d", ct.TokenType))
				}
			})
		},
	}
}
