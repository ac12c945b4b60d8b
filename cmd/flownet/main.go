// Command flownet runs flow-network computations over persisted
// network snapshots.
//
// Usage:
//
//	flownet maxflow -i net.json -o solved.json
//	flownet mincost -i net.json --codec msgpack --zstd
//	flownet verify  -i net.json
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flownet/codec"
	"github.com/katalvlaran/flownet/flownet"
)

var (
	inputPath  string
	outputPath string
	codecName  string
	zstd       bool
	verbose    bool
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "flownet",
		Short:         "Max-flow and min-cost max-flow over persisted networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "input snapshot path (required)")
	root.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "write the solved snapshot here")
	root.PersistentFlags().StringVar(&codecName, "codec", "json", "snapshot codec: json or msgpack")
	root.PersistentFlags().BoolVar(&zstd, "zstd", false, "zstd-compress snapshots")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log augmentations and cancellations")
	_ = root.MarkPersistentFlagRequired("input")

	root.AddCommand(maxflowCmd(), mincostCmd(), verifyCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func maxflowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "maxflow",
		Short: "Compute the maximum flow from source to sink",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, enc, err := loadNetwork()
			if err != nil {
				return err
			}
			total, err := n.MaxFlow(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("max flow %s→%s: %d\n", n.Source(), n.Sink(), total)

			return saveNetwork(n, enc)
		},
	}
}

func mincostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mincost",
		Short: "Compute the minimum-cost maximum flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, enc, err := loadNetwork()
			if err != nil {
				return err
			}
			cost, flow, err := n.MinCostMaxFlow(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("min-cost max flow %s→%s: flow %d at cost %d\n",
				n.Source(), n.Sink(), flow, cost)

			return saveNetwork(n, enc)
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the snapshot's structural invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _, err := loadNetwork()
			if err != nil {
				return err
			}
			if err = n.Verify(); err != nil {
				return err
			}
			fmt.Println("ok")

			return nil
		},
	}
}

func buildEncoder() (*codec.Encoder, error) {
	var opts []codec.Option
	switch codecName {
	case "json":
		opts = append(opts, codec.WithCodec(codec.JSON()))
	case "msgpack":
		opts = append(opts, codec.WithCodec(codec.Msgpack()))
	default:
		return nil, fmt.Errorf("unknown codec %q (want json or msgpack)", codecName)
	}
	if zstd {
		opts = append(opts, codec.WithCompression(codec.CompressionZstd))
	}

	return codec.NewEncoder(opts...), nil
}

func loadNetwork() (*flownet.Network, *codec.Encoder, error) {
	enc, err := buildEncoder()
	if err != nil {
		return nil, nil, err
	}
	n, err := flownet.Load(inputPath, enc, flownet.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	log.WithFields(logrus.Fields{
		"input":  inputPath,
		"format": enc.Name(),
	}).Debug("snapshot loaded")

	return n, enc, nil
}

func saveNetwork(n *flownet.Network, enc *codec.Encoder) error {
	if outputPath == "" {
		return nil
	}
	if err := n.Save(outputPath, enc); err != nil {
		return err
	}
	log.WithField("output", outputPath).Debug("snapshot written")

	return nil
}
