package main

import (
	"errors"
	"strings"
	"testing"
)

func TestReadLog(t *testing.T) {
	tests := []struct {
		file    string
		want    string
		wantErr error
	}{
		{
			file: "testfiles/good.log",
			want: "Best fit event: mag 7.4 lon 108.5 lat -7.0 depth 15.0 rmse 0.5321",
		},
		{
			file:    "testfiles/bad.log",
			want:    "Traceback",
			wantErr: ErrLogContainsError,
		},
		{
			file:    "testfiles/short.log",
			wantErr: ErrFitNotFound,
		},
		{
			file:    "testfiles/blank.log",
			wantErr: ErrBlankLog,
		},
		{
			file:    "testfiles/nonexistent.log",
			wantErr: ErrLogNotFound,
		},
	}
	for _, test := range tests {
		got, err := ReadLog(test.file)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("%s: got %v, wanted %v\n",
				test.file, err, test.wantErr)
		}
		if !strings.Contains(got, test.want) {
			t.Errorf("%s: got %q, wanted %q\n",
				test.file, got, test.want)
		}
	}
}
