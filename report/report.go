// Package report 벤치마크 결과를 표 형태로 내보낸다.
// 행은 설정 이름, 열은 입력 크기.
package report

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"

	"quickbench/bench"
)

// WriteCSV out.csv 형식: "Name,Size of N,..." 헤더와 평균 나노초
func WriteCSV(w io.Writer, results []bench.Result) error {
	sizes := bench.SizesOf(results)
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(sizes)+1)
	header = append(header, "Name")
	for _, size := range sizes {
		header = append(header, fmt.Sprintf("Size of %d", size))
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	for _, res := range results {
		row := make([]string, 0, len(sizes)+1)
		row = append(row, res.Name)
		for _, size := range sizes {
			avg, ok := res.Average(size)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, strconv.FormatInt(avg.Nanoseconds(), 10))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row %q", res.Name)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// WriteMarkdown 크기별 평균 실행시간 표
func WriteMarkdown(w io.Writer, results []bench.Result, generated time.Time) error {
	sizes := bench.SizesOf(results)

	var b strings.Builder
	b.WriteString("# 퀵소트 벤치마크 결과\n\n")
	fmt.Fprintf(&b, "실행 시간: %s\n\n", generated.Format("2006-01-02 15:04:05"))

	// 테이블 헤더
	b.WriteString("| 설정 |")
	for _, size := range sizes {
		fmt.Fprintf(&b, " %d |", size)
	}
	b.WriteString(" 실패 |\n|---|")
	for range sizes {
		b.WriteString("---:|")
	}
	b.WriteString("---:|\n")

	for _, res := range results {
		fmt.Fprintf(&b, "| %s |", res.Name)
		for _, size := range sizes {
			if avg, ok := res.Average(size); ok {
				fmt.Fprintf(&b, " %v |", avg)
			} else {
				b.WriteString(" - |")
			}
		}
		fmt.Fprintf(&b, " %d |\n", res.TotalFailures())
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write markdown")
}

// WriteJSON 들여쓰기된 JSON
func WriteJSON(w io.Writer, results []bench.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(results), "encode json")
}

// WriteTable 터미널용 요약 표
func WriteTable(w io.Writer, results []bench.Result) error {
	sizes := bench.SizesOf(results)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "설정\t")
	for _, size := range sizes {
		fmt.Fprintf(tw, "%d\t", size)
	}
	fmt.Fprintln(tw)

	for _, res := range results {
		fmt.Fprintf(tw, "%s\t", res.Name)
		for _, size := range sizes {
			if avg, ok := res.Average(size); ok {
				fmt.Fprintf(tw, "%v\t", avg.Round(time.Microsecond/10))
			} else {
				fmt.Fprint(tw, "-\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return errors.Wrap(tw.Flush(), "write table")
}

// SaveFile 기존 파일을 지우고 새로 쓴다
func SaveFile(filename string, write func(io.Writer) error) error {
	if err := os.Remove(filename); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "remove %s", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := write(writer); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", filename)
	}
	return errors.Wrapf(file.Close(), "close %s", filename)
}
