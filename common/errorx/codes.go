package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 3xxx    - 活动探索错误

const (
	CodeSuccess            = 0    // 成功
	CodeInternalError      = 1000 // 内部服务器错误
	CodeInvalidParams      = 1001 // 参数校验失败
	CodeNotFound           = 1004 // 资源不存在
	CodeTooManyRequests    = 1005 // 请求过于频繁
	CodeServiceUnavailable = 1006 // 服务暂不可用

	// 活动探索 3001-3020
	CodeActivityNotFound    = 3001 // 活动不存在
	CodeUnknownCategory     = 3002 // 分类不存在
	CodeUnknownSubcategory  = 3003 // 子分类不存在
	CodeDraftInvalid        = 3004 // 活动草稿不完整
	CodeParticipantNotFound = 3005 // 参与者不存在
	CodeInvalidTab          = 3006 // 无效的标签页
	CodeInvalidProfileField = 3007 // 无效的资料字段
	CodeUnknownIntent       = 3008 // 无法识别的操作
)

// codeMessages 错误码对应的默认消息
var codeMessages = map[int]string{
	CodeSuccess:             "success",
	CodeInternalError:       "内部服务器错误",
	CodeInvalidParams:       "参数校验失败",
	CodeNotFound:            "资源不存在",
	CodeTooManyRequests:     "请求过于频繁，请稍后再试",
	CodeServiceUnavailable:  "服务暂不可用",
	CodeActivityNotFound:    "活动不存在",
	CodeUnknownCategory:     "分类不存在",
	CodeUnknownSubcategory:  "子分类不存在",
	CodeDraftInvalid:        "活动信息不完整",
	CodeParticipantNotFound: "参与者不存在",
	CodeInvalidTab:          "无效的标签页",
	CodeInvalidProfileField: "无效的资料字段",
	CodeUnknownIntent:       "无法识别的操作",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "未知错误"
}

// IsValidCode 判断是否为有效的业务错误码
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
