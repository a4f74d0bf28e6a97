package cli

import (
	"fmt"
	"io"
)

const usageText = `Usage: %s [OPTIONS] [path...]
Process stream of packets (VCDUs) or list of LRIT files.

Options:
  -c, --config PATH          Path to configuration file
  -m, --mode [packet|lrit]   Process stream of VCDU packets
                             or pre-assembled LRIT files
      --help                 Show this help

If mode is set to packet, goesproc reads VCDU packets from the
specified path(s). To process real time data you can setup a pipe from
the decoder into goesproc (e.g. use /dev/stdin as path argument).
To process recorded data you can specify a list of files that contain
VCDU packets in chronological order.

If mode is set to lrit, goesproc finds all LRIT files in the specified
paths and processes them sequentially. You can specify a mix of files
and directories. Directory arguments expand into the files they
contain that match the glob '*.lrit*'. The complete list of LRIT files
is sorted according to their time stamp header prior to processing it.

`

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, usageText, name)
}

// diagnostic formats a fatal message the way GNU tools do.
func diagnostic(name, reason string) string {
	return fmt.Sprintf("%s: %s\nTry '%s --help' for more information.", name, reason, name)
}
