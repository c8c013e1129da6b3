package output

import (
	"encoding/csv"
	"io"
	"os"
	"time"
)

const reportDateLayout = "2006-01-02"

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	w, file, err := openOutputWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(w), file, nil
}

func formatReportDate(t time.Time) string {
	return t.Format(time.RFC3339)
}
