package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"

	"github.com/geph-official/hashmix/libs/hwmix"
	"github.com/pkg/errors"
	"github.com/vharitonsky/iniflags"
)

var filePath string
var fingerprint string
var seedOnly bool
var useDescriptor bool

func main() {
	flag.StringVar(&filePath, "file", "", "file to digest; stdin if empty")
	flag.StringVar(&fingerprint, "fingerprint", "", "hardware fingerprint as a hex uint64; derived automatically if empty")
	flag.BoolVar(&seedOnly, "seedOnly", false, "print the hardware seed and exit")
	flag.BoolVar(&useDescriptor, "descriptor", false, "derive the seed from static runtime properties instead of the clock")
	iniflags.Parse()
	if seedOnly {
		fmt.Println(hwmix.GetHardwareSeed())
		return
	}
	seed, err := resolveSeed()
	if err != nil {
		log.Fatal(err)
	}
	input, err := readInput()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hex.EncodeToString(hwmix.Expand(hwmix.Mix(input, seed))))
}

func resolveSeed() (uint64, error) {
	if fingerprint != "" {
		seed, err := strconv.ParseUint(fingerprint, 16, 64)
		if err != nil {
			return 0, errors.Wrap(err, "bad fingerprint")
		}
		return seed, nil
	}
	if useDescriptor {
		return hwmix.DescriptorSeed(), nil
	}
	return hwmix.HardwareSeed(), nil
}

func readInput() ([]byte, error) {
	if filePath == "" {
		b, err := ioutil.ReadAll(os.Stdin)
		return b, errors.Wrap(err, "cannot read stdin")
	}
	b, err := ioutil.ReadFile(filePath)
	return b, errors.Wrap(err, "cannot read input file")
}
