// Package tracker implements Trackers, which track and save data in an
// experiment
package tracker

import (
	"encoding/gob"
	"log"
	"os"

	ts "github.com/samuelfneumann/golarcc/timestep"
)

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save()
}

// LoadData loads and returns the float64 data saved by a Tracker
func LoadData(filename string) []float64 {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Decode the data
	var data []float64
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		log.Fatalf("could not decode data file: %v", err)
	}

	return data
}

// LoadIntData loads and returns the int data saved by a Tracker
func LoadIntData(filename string) []int {
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("could not open data file: %v", err)
	}
	defer file.Close()

	// Decode the data
	var data []int
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&data); err != nil {
		log.Fatalf("could not decode data file: %v", err)
	}

	return data
}
