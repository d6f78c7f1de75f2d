// Command davinci-ballotproof reads a ballot proof request as JSON, builds
// the circuit inputs and writes the result as JSON. It is a thin wrapper
// around the ballotproof package meant for scripting and debugging.
package main

import (
	"encoding/json"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/vocdoni/davinci-ballotproof/ballotproof"
	"github.com/vocdoni/davinci-ballotproof/log"
)

func main() {
	inputPath := flag.StringP("input", "i", "-", "input JSON file path, or - for stdin")
	outputPath := flag.StringP("output", "o", "-", "output JSON file path, or - for stdout")
	logLevel := flag.String("log-level", "error", "log level (debug, info, warn, error)")
	indent := flag.Bool("indent", false, "indent the JSON output")
	flag.Parse()

	log.Init(*logLevel, "stderr")

	data, err := readInput(*inputPath)
	if err != nil {
		log.Fatalf("could not read input: %v", err)
	}
	inputs, err := ballotproof.ParseBallotProofInputs(data)
	if err != nil {
		log.Fatalf("could not parse input: %v", err)
	}
	result, err := ballotproof.GenerateBallotProofInputs(inputs)
	if err != nil {
		log.Fatalf("could not generate ballot proof inputs: %v", err)
	}

	var out []byte
	if *indent {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		log.Fatalf("could not encode result: %v", err)
	}
	if err := writeOutput(*outputPath, out); err != nil {
		log.Fatalf("could not write output: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	data = append(data, '\n')
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
