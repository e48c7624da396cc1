package inventory

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
)

var csvHeader = []string{"Name", "Brand", "Disk", "Serial", "RAM", "OS"}

// WriteCSV writes the records with a header row.
func WriteCSV(w io.Writer, endpoints []Endpoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range endpoints {
		if err := cw.Write([]string{e.Name, e.Brand, e.Disk, e.Serial, e.RAM, e.OS}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the records to path, replacing any previous file.
func WriteCSVFile(path string, endpoints []Endpoint) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := WriteCSV(f, endpoints); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return f.Close()
}
