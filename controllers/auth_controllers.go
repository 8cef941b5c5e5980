package controllers

import (
	"context"
	"os"

	"staybnb/config"
	"staybnb/dto"
	"staybnb/models"
	"staybnb/response"
	"staybnb/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

const accessTokenExpireMinutes = 60 * 24

func convertToUserLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		UserVerified: user.IsVerified,
		UserPhone:    user.PhoneNumber,
		UserRole:     user.Role,
		UserAvatar:   user.Avatar,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// Register đăng ký tài khoản mới
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.Conflict(c, "Email đã được đăng ký")
		return
	}

	hashedPassword, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToUserLoginResponse(user))
}

// Login đăng nhập bằng email hoặc số điện thoại
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Tài khoản hoặc mật khẩu không đúng")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.BadRequest(c, "Tài khoản hoặc mật khẩu không đúng")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, accessTokenExpireMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"accessToken": token,
		"user":        convertToUserLoginResponse(user),
	})
}

// AuthGoogle đăng nhập bằng Google, tạo tài khoản nếu chưa có
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	avatar, _ := payload.Claims["picture"].(string)
	googleID := payload.Subject

	if email == "" {
		response.BadRequest(c, "Token Google không có email")
		return
	}

	var user models.User
	if err := config.DB.Where("google_id = ? OR email = ?", googleID, email).First(&user).Error; err != nil {
		user = models.User{
			Name:       name,
			Email:      email,
			Avatar:     avatar,
			GoogleID:   googleID,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if user.GoogleID == "" {
		// Tài khoản email đã có: liên kết với Google
		user.GoogleID = googleID
		if user.Avatar == "" {
			user.Avatar = avatar
		}
		if err := config.DB.Save(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, accessTokenExpireMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"accessToken": token,
		"user":        convertToUserLoginResponse(user),
	})
}

// Logout xóa cookie phiên đăng nhập
func Logout(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// GetMe trả về thông tin user đang đăng nhập
func GetMe(c *gin.Context) {
	userID := c.GetUint("userID")

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToUserLoginResponse(user))
}
