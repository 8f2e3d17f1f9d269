package tools

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

// ExportToExcel 将结构体切片写入指定 sheet，表头取自 excel 标签
func ExportToExcel(f *excelize.File, sheet string, data interface{}) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %v 不是切片", data)
	}
	if v.Len() == 0 {
		return nil
	}

	elemType := v.Index(0).Type()
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %v 不是结构体切片", data)
	}

	if sheet == "" {
		sheet = "Sheet1"
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	var cols []int
	var headers []string
	for i := 0; i < elemType.NumField(); i++ {
		sf := elemType.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		tag := sf.Tag.Get("excel")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = sf.Name
		}
		cols = append(cols, i)
		headers = append(headers, tag)
	}

	// 写表头
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	// 写数据行
	for row := 0; row < v.Len(); row++ {
		elem := v.Index(row)
		for colIndex, fieldIndex := range cols {
			cell, err := excelize.CoordinatesToCellName(colIndex+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, elem.Field(fieldIndex).Interface()); err != nil {
				return err
			}
		}
	}

	return nil
}
