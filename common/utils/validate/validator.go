package validate

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// structValidator 结构体校验器（并发安全，全局复用）
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误信息里使用 json 字段名，和前端表单保持一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// notblank: 去除首尾空白后不能为空
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return IsNotBlank(fl.Field().String())
	})
	return v
}

// RegisterValidation 注册自定义校验规则
func RegisterValidation(tag string, fn func(value string) bool) error {
	return structValidator.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return fn(fl.Field().String())
	})
}

// Struct 校验结构体，返回第一条可读的错误信息
func Struct(v interface{}) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	return fmt.Errorf("%s", describe(errs[0]))
}

// describe 将校验错误转换为提示文案
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s 不能为空", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s 不能小于 %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s 不能超过 %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s 校验失败(%s)", fe.Field(), fe.Tag())
	}
}

// IsNotBlank 判断字符串不为空白
func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsBlank 判断字符串为空白
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// LengthBetween 判断字符串长度在范围内（按字符数，非字节数）
func LengthBetween(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	return length >= min && length <= max
}

// MaxLength 判断字符串长度不超过最大值
func MaxLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

// Contains 判断字符串是否在列表中
func Contains(s string, list []string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
