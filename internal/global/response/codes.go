package response

// 业务错误码，前三位即 HTTP 状态码
var (
	ErrInvalidRequest     = newError(40001, "请求参数错误")
	ErrInvalidStatus      = newError(40002, "无效的状态值")
	ErrFileInvalid        = newError(40003, "文件校验失败")
	ErrTokenMissing       = newError(40101, "访问令牌缺失")
	ErrInvalidCredentials = newError(40102, "邮箱或密码错误")
	ErrTokenInvalid       = newError(40301, "访问令牌无效")
	ErrUnauthorized       = newError(40302, "权限不足")
	ErrNotFound           = newError(40401, "资源不存在")
	ErrAlreadyExists      = newError(40901, "资源已存在")
	ErrInternal           = newError(50000, "服务器内部错误")
	ErrDatabase           = newError(50001, "数据库错误")
	ErrStorage            = newError(50002, "文件存储错误")
	ErrTimeout            = newError(50401, "请求处理超时")
)
