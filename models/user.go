package models

// UserIdentity 登录/注册成功后后端返回的用户身份
type UserIdentity struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"` // 可选的会话令牌，后端未启用时为空
}

func (u *UserIdentity) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
