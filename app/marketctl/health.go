package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x-xyz/hbarmarket/domain/healthcheck"
)

func newHealthCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the rpc endpoint and the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := s.app.HealthCheck.Check(s.c)
			if err != nil && !errors.Is(err, healthcheck.ErrUnhealthy) {
				return err
			}
			if perr := s.out.result(r, func() {
				rows := make([][]string, 0, len(r.Components))
				for _, comp := range r.Components {
					state := "ok"
					if !comp.Ok {
						state = comp.Error
					}
					rows = append(rows, []string{comp.Name, fmt.Sprintf("%dms", comp.LatencyMs), state})
				}
				s.out.field("Block", r.BlockNumber)
				s.out.table("COMPONENT\tLATENCY\tSTATE", rows)
			}); perr != nil {
				return perr
			}
			return err
		},
	}
}
