package authControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopsail/storefront-api/models"
	"github.com/shopsail/storefront-api/tenant"
)

const tokenTTL = 7 * 24 * time.Hour

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Shop     string `json:"shop"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Shop     string `json:"shop"`
}

// emailFilter matches an email case-insensitively; uniqueness within a tenant
// is enforced at query time, not by the index.
func emailFilter(sellerID, email string) bson.M {
	return bson.M{
		"seller_id": sellerID,
		"email": primitive.Regex{
			Pattern: "^" + regexp.QuoteMeta(strings.TrimSpace(email)) + "$",
			Options: "i",
		},
	}
}

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func resolveSeller(c *gin.Context, db *mongo.Database, shopSlug string) (string, bool) {
	sellerID, err := tenant.ResolveSellerID(c.Request.Context(), db, shopSlug, c.GetHeader(tenant.Header))
	if err != nil {
		if errors.Is(err, tenant.ErrMissingTenant) || errors.Is(err, tenant.ErrShopNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Println("❌ Failed to resolve seller:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return "", false
	}
	return sellerID, true
}

// POST /auth/register
func Register(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sellerID, ok := resolveSeller(c, db, req.Shop)
		if !ok {
			return
		}

		users := db.Collection(models.UsersCollection)

		count, err := users.CountDocuments(c.Request.Context(), emailFilter(sellerID, req.Email))
		if err != nil {
			log.Println("❌ Failed to check existing account:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("❌ Failed to hash password:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		user := models.User{
			ID:           primitive.NewObjectID(),
			SellerID:     sellerID,
			Name:         strings.TrimSpace(req.Name),
			Email:        strings.TrimSpace(req.Email),
			PasswordHash: string(hash),
			CreatedAt:    time.Now(),
		}

		if _, err := users.InsertOne(c.Request.Context(), user); err != nil {
			log.Println("❌ Failed to create account:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		token, err := issueToken(user.ID.Hex())
		if err != nil {
			log.Println("❌ Token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// POST /auth/login
func Login(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sellerID, ok := resolveSeller(c, db, req.Shop)
		if !ok {
			return
		}

		var user models.User
		err := db.Collection(models.UsersCollection).
			FindOne(c.Request.Context(), emailFilter(sellerID, req.Email)).
			Decode(&user)
		if err != nil {
			if err != mongo.ErrNoDocuments {
				log.Println("❌ Failed to look up account:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
				return
			}
			// Same response as a bad password so emails cannot be enumerated
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := issueToken(user.ID.Hex())
		if err != nil {
			log.Println("❌ Token generation failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}

// GET /auth/me (JWT protected)
func Me(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID, _ := c.Get("user_id")
		idHex, _ := rawID.(string)

		id, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		var user models.User
		err = db.Collection(models.UsersCollection).
			FindOne(c.Request.Context(), bson.M{"_id": id}).
			Decode(&user)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			log.Println("❌ Failed to fetch account:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
