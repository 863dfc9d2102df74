package api

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"FitBuddyGo/config"
	"FitBuddyGo/models"
	"FitBuddyGo/utils"
)

// ErrNotFound 资源不存在（如尚未创建的资料）
var ErrNotFound = errors.New("not found")

// Client 封装对 FitBuddy 后端的所有 HTTP 调用
type Client struct {
	http *resty.Client
}

// NewClient 创建后端客户端，token 为空时不携带认证头
func NewClient(baseURL, token string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		c.SetAuthToken(token)
	}
	return &Client{http: c}
}

// SetToken 更新认证令牌（登录成功后调用）
func (c *Client) SetToken(token string) {
	if token != "" {
		c.http.SetAuthToken(token)
	}
}

// r 构造绑定上下文的请求，后端偶尔漏写响应的 Content-Type，强制按 JSON 解析
func (c *Client) r(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).ForceContentType("application/json")
}

// apiError 把非 2xx 响应转成错误，后端的错误体是纯文本消息
func apiError(resp *resty.Response) error {
	msg := strings.TrimSpace(string(resp.Body()))
	if msg == "" {
		msg = resp.Status()
	}
	return errors.New(msg)
}

// Login 登录，返回用户身份
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.UserIdentity, error) {
	var user models.UserIdentity
	resp, err := c.r(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &user, nil
}

// Register 注册新用户
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.UserIdentity, error) {
	var user models.UserIdentity
	resp, err := c.r(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/register")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &user, nil
}

// GetProfile 获取用户资料，404 返回 ErrNotFound（表示尚未创建）
func (c *Client) GetProfile(ctx context.Context, userID int64) (*models.PersonalizationProfile, error) {
	var profile models.PersonalizationProfile
	resp, err := c.r(ctx).
		SetResult(&profile).
		Get(fmt.Sprintf("/users/%d/profile", userID))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() == 404 {
		return nil, ErrNotFound
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &profile, nil
}

// SaveProfile 保存（创建或更新）用户资料，返回后端回显的资料
func (c *Client) SaveProfile(ctx context.Context, userID int64, profile models.PersonalizationProfile) (*models.PersonalizationProfile, error) {
	var saved models.PersonalizationProfile
	resp, err := c.r(ctx).
		SetBody(profile).
		SetResult(&saved).
		Put(fmt.Sprintf("/users/%d/profile", userID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &saved, nil
}

// CheckedInToday 查询今天是否已打卡
func (c *Client) CheckedInToday(ctx context.Context, userID int64) (bool, error) {
	resp, err := c.r(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		Get("/checkin")
	if err != nil {
		return false, err
	}
	if resp.IsError() {
		return false, apiError(resp)
	}
	return strings.TrimSpace(string(resp.Body())) == "true", nil
}

// CheckinToday 记录今天的打卡，重复调用由后端保证幂等
func (c *Client) CheckinToday(ctx context.Context, userID int64) error {
	resp, err := c.r(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		Post("/checkin")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiError(resp)
	}
	return nil
}

// Stats 获取连续打卡统计
func (c *Client) Stats(ctx context.Context, userID int64) (*models.StreakStats, error) {
	var stats models.StreakStats
	resp, err := c.r(ctx).
		SetQueryParam("userId", strconv.FormatInt(userID, 10)).
		SetResult(&stats).
		Get("/checkin/stats")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &stats, nil
}

// Calendar 获取 [start, end] 闭区间内的打卡记录，日期为 YYYY-MM-DD
func (c *Client) Calendar(ctx context.Context, userID int64, start, end string) ([]models.CheckinRecord, error) {
	var records []models.CheckinRecord
	resp, err := c.r(ctx).
		SetQueryParams(map[string]string{
			"userId": strconv.FormatInt(userID, 10),
			"start":  start,
			"end":    end,
		}).
		SetResult(&records).
		Get("/checkin/calendar")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return records, nil
}

// Month 获取指定月份的打卡记录
func (c *Client) Month(ctx context.Context, userID int64, year, month int) ([]models.CheckinRecord, error) {
	var records []models.CheckinRecord
	resp, err := c.r(ctx).
		SetQueryParams(map[string]string{
			"userId": strconv.FormatInt(userID, 10),
			"year":   strconv.Itoa(year),
			"month":  strconv.Itoa(month),
		}).
		SetResult(&records).
		Get("/checkin/month")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return records, nil
}

// TokenExpired 判断当前令牌是否已过期，便于提前提示重新登录。
// 无令牌或无法解析时按未过期处理，交给后端裁决。
func (c *Client) TokenExpired() bool {
	token := c.http.Token
	if token == "" {
		return false
	}
	expired, err := utils.TokenExpired(token)
	if err != nil {
		config.Logger.Debugw("解析令牌失败", "error", err)
		return false
	}
	return expired
}
