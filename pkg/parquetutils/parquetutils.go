// Package parquetutils reads and writes whole parquet files held in memory.
package parquetutils

import (
	"github.com/cockroachdb/errors"
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// ReaderConcurrency is the number of column readers per file.
var ReaderConcurrency int64 = 4

// ReadBytes decodes every row of the parquet file in data into T.
func ReadBytes[T any](data []byte) ([]T, error) {
	r, err := reader.NewParquetReader(parquetbuffer.NewBufferFileFromBytesNoAlloc(data), new(T), ReaderConcurrency)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet reader")
	}
	defer r.ReadStop()

	rows := make([]T, r.GetNumRows())
	if err := r.Read(&rows); err != nil {
		return nil, errors.Wrap(err, "can't read parquet rows")
	}
	return rows, nil
}

// WriteBytes encodes rows into a single parquet file.
func WriteBytes[T any](rows []T) ([]byte, error) {
	buf := parquetbuffer.NewBufferFile()
	w, err := writer.NewParquetWriter(buf, new(T), 1)
	if err != nil {
		return nil, errors.Wrap(err, "can't create parquet writer")
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, errors.Wrap(err, "can't write parquet row")
		}
	}
	if err := w.WriteStop(); err != nil {
		return nil, errors.Wrap(err, "can't flush parquet file")
	}
	return buf.Bytes(), nil
}
