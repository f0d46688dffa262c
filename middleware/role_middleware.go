package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "skill-tracker-backend/lib/utils/auth-utils"
	"skill-tracker-backend/models"
	apimodels "skill-tracker-backend/models/api"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetUserRole(ctx) != models.UserRoleAdmin {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if stringSub, ok := sub.(string); ok {
			return stringSub
		}
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func GetEmployeeNo(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if no, exist := claims["employee_no"]; exist {
		if stringNo, ok := no.(string); ok {
			return stringNo
		}
	}
	return ""
}

// GetActor собирает субъекта действия из клеймов токена
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		UserID:     GetUserID(ctx),
		Role:       GetUserRole(ctx),
		EmployeeNo: GetEmployeeNo(ctx),
	}
}
