package csv

import (
	"errors"
	"fmt"
	"io/ioutil"
	"reflect"
	"strings"
)

// 列名从类型推导, 嵌套struct展开成 Parent.Field 列
func fieldNames(recordType reflect.Type) []string {
	var names []string

	for i := 0; i < recordType.NumField(); i++ {
		field := recordType.Field(i)
		if field.Type.Kind() == reflect.Struct {
			for j := 0; j < field.Type.NumField(); j++ {
				names = append(names, field.Name+"."+field.Type.Field(j).Name)
			}
		} else {
			names = append(names, field.Name)
		}
	}
	return names
}

func fieldValues(record reflect.Value) []string {
	var values []string

	for i := 0; i < record.NumField(); i++ {
		field := record.Field(i)
		if field.Kind() == reflect.Struct {
			for j := 0; j < field.NumField(); j++ {
				values = append(values, fmt.Sprintf("%v", field.Field(j).Interface()))
			}
		} else {
			values = append(values, fmt.Sprintf("%v", field.Interface()))
		}
	}
	return values
}

func RecordToCsv(record interface{}) (string, string, error) {
	recordRef := reflect.ValueOf(record)
	if recordRef.Kind() == reflect.Ptr {
		recordRef = recordRef.Elem()
	}
	if recordRef.Kind() != reflect.Struct {
		return "", "", errors.New("record must be a struct or a struct pointer")
	}

	nameStr := strings.Join(fieldNames(recordRef.Type()), ",")
	valueStr := strings.Join(fieldValues(recordRef), ",")
	return nameStr, valueStr, nil
}

func RecordListToCsv(list interface{}) (string, error) {
	listRef := reflect.ValueOf(list)
	if listRef.Kind() != reflect.Slice {
		return "", errors.New("list must be a slice of structs")
	}

	elemType := listRef.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return "", errors.New("list must be a slice of structs")
	}

	// 空列表也要带表头
	headerStr := strings.Join(fieldNames(elemType), ",")
	valueStr := ""
	for i := 0; i < listRef.Len(); i++ {
		item := listRef.Index(i)
		if item.Kind() == reflect.Ptr {
			item = item.Elem()
		}
		valueStr += strings.Join(fieldValues(item), ",") + "\n"
	}

	return headerStr + "\n" + valueStr, nil
}

func WriteFile(filePath string, list interface{}) error {
	data, err := RecordListToCsv(list)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filePath, []byte(data), 0644)
}
