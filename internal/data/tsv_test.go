package data

import (
	"strings"
	"testing"
)

func TestParseTSV(t *testing.T) {
	input := strings.Join([]string{
		"where\twhere_type\twhen\twhen_type\tcphi:hicp2015:cp-hi00\tcphi:hicp2015:cp-hi00:outlierness",
		"FI\tcountry\t2020M3\tmonth\t102.3\t0.9",
		"SE\tcountry\t2020M3\tmonth\t101.1\t",
	}, "\n")

	rows, err := parseTSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	fi := rows[0]
	if fi.Location != "FI" || fi.LocationType != "country" {
		t.Errorf("location = %s (%s)", fi.Location, fi.LocationType)
	}
	if fi.Timestamp != "2020M3" || fi.TimestampType != "month" {
		t.Errorf("timestamp = %s (%s)", fi.Timestamp, fi.TimestampType)
	}
	if fi.Values["cphi:hicp2015:cp-hi00"] != 102.3 {
		t.Errorf("values = %v", fi.Values)
	}
	if fi.Outlierness["cphi:hicp2015:cp-hi00"] != 0.9 {
		t.Errorf("outlierness = %v", fi.Outlierness)
	}

	se := rows[1]
	if len(se.Outlierness) != 0 {
		t.Errorf("empty outlierness cell should be skipped, got %v", se.Outlierness)
	}
}

func TestParseTSVCanonicalHeader(t *testing.T) {
	input := strings.Join([]string{
		"location\tlocation_type\ttimestamp\ttimestamp_type\tx",
		"FI\tcountry\t2020\tyear\t1.5",
	}, "\n")

	rows, err := parseTSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Values["x"] != 1.5 {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseTSVDefaultsLocationType(t *testing.T) {
	input := "where\twhen\twhen_type\tx\nFI\t2020\tyear\t1\n"

	rows, err := parseTSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].LocationType != "country" {
		t.Errorf("location type = %q", rows[0].LocationType)
	}
}

func TestParseTSVSkipsValuelessRows(t *testing.T) {
	input := "where\twhen\twhen_type\tx\nFI\t2020\tyear\tnot-a-number\nSE\t2020\tyear\t2\n"

	rows, err := parseTSV(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Location != "SE" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestParseTSVMissingLocation(t *testing.T) {
	input := "when\twhen_type\tx\n2020\tyear\t1\n"

	if _, err := parseTSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected an error for a missing location column")
	}
}
