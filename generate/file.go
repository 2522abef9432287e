package generate

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrEmptyDataset 데이터 파일에 값이 하나도 없음
var ErrEmptyDataset = errors.New("generate: dataset file is empty")

// WriteFile 한 줄에 하나씩 숫자를 기록 (64KB 버퍼)
func WriteFile(filename string, data []int) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)
	for _, num := range data {
		writer.WriteString(strconv.Itoa(num))
		writer.WriteByte('\n')
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	return file.Close()
}

// ReadFile WriteFile 로 만든 파일을 읽는다. 빈 줄은 건너뛴다.
func ReadFile(filename string) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", filename)
	}
	defer file.Close()

	// 대략적인 숫자 개수 추정 (평균 6자리 + 개행)
	var data []int
	if fileInfo, err := file.Stat(); err == nil {
		data = make([]int, 0, fileInfo.Size()/7)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filename, line)
		}
		data = append(data, num)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}
	return data, nil
}

// File 파일 데이터셋을 한 번 읽어 두고, 요청 길이만큼 앞에서부터 (모자라면 반복해서) 잘라준다
func File(filename string) (Generator, error) {
	values, err := ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.Wrapf(ErrEmptyDataset, "%s", filename)
	}

	return Func(func(size int) []int {
		data := make([]int, size)
		for i := range data {
			data[i] = values[i%len(values)]
		}
		return data
	}), nil
}
