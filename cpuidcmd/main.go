// Command cpuidcmd inspects the CPU identification data of the current
// machine, or replays a capture taken elsewhere.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hwprobe/cpuid"
)

var (
	fromFile string
	verbose  bool
)

func main() {
	root := &cobra.Command{
		Use:           "cpuidcmd",
		Short:         "Inspect CPU identification and feature data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().StringVar(&fromFile, "from", "", "replay a capture file instead of querying hardware")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(infoCmd(), featuresCmd(), dumpCmd(), captureCmd())

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// reader returns the leaf source selected by --from: a capture replay when
// set, the hardware otherwise.
func reader() (cpuid.LeafReader, error) {
	if fromFile == "" {
		return cpuid.HardwareReader, nil
	}
	logrus.WithField("file", fromFile).Debug("replaying capture")
	data, err := cpuid.ReadFile(fromFile)
	if err != nil {
		return nil, err
	}
	return data.Reader(), nil
}

func snapshot() (*cpuid.Snapshot, error) {
	r, err := reader()
	if err != nil {
		return nil, err
	}
	return cpuid.NewFromReader(r), nil
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show processor identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := snapshot()
			if err != nil {
				return err
			}

			brand, _ := s.BrandString()
			fmt.Printf("Vendor ID:      %s (%s)\n", s.VendorID(), s.VendorName())
			fmt.Printf("Brand String:   %s\n", brand)
			fmt.Printf("Family:         %d (0x%x)\n", s.FamilyID(), s.FamilyID())
			fmt.Printf("Model:          %d (0x%x)\n", s.ModelID(), s.ModelID())
			fmt.Printf("Stepping:       %d\n", s.Stepping())
			fmt.Printf("Max Function:   0x%08x\n", s.MaxFunction())
			fmt.Printf("Max Ext. Func.: 0x%08x\n", s.MaxExtendedFunction())
			if pas, ok := s.PhysicalAddressSize(); ok {
				fmt.Printf("Physical Address Bits: %d\n", pas.PhysicalAddressBits())
				fmt.Printf("Linear Address Bits:   %d\n", pas.LinearAddressBits())
			}
			if cl, ok := s.CacheLine(); ok {
				fmt.Printf("L2 Cache: %d KB, %s, %d byte lines\n",
					cl.CacheSize(), cl.L2Associativity(), cl.CacheLineSize())
			}
			return nil
		},
	}
}

func featuresCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "features",
		Short: "List feature flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := snapshot()
			if err != nil {
				return err
			}

			yes := color.New(color.FgGreen).Sprint("yes")
			no := color.New(color.FgRed).Sprint("no")

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Leaf", "Feature", "Supported"})
			for _, f := range s.Flags() {
				if !f.Supported && !all {
					continue
				}
				supported := no
				if f.Supported {
					supported = yes
				}
				table.Append([]string{f.Leaf, f.Name, supported})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include unsupported features")
	return cmd
}

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Dump every decoded field, grouped by leaf",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := snapshot()
			if err != nil {
				return err
			}
			s.Dump(os.Stdout)
			return nil
		},
	}
}

func captureCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Record raw leaf data to a file (JSON, or YAML by extension)",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := reader()
			if err != nil {
				return err
			}
			data := cpuid.Capture(r)
			logrus.WithFields(logrus.Fields{
				"entries": len(data.Entries),
				"file":    output,
			}).Debug("writing capture")
			if err := data.WriteFile(output); err != nil {
				return err
			}
			fmt.Printf("wrote %d leaves to %s\n", len(data.Entries), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "cpuid_data.json", "output file")
	return cmd
}
