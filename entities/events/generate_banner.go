package events

import (
	"api/database"
	"api/integrations/llm"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GenerateBanner genera el banner promocional del webinar con el modelo de
// imágenes y lo deja en caché para servirlo sin regenerarlo.
func GenerateBanner(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
		return
	}

	payload := struct {
		Prompt string `json:"prompt"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.EVENTS_INVALID_REQUEST_DATA)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_WEBINAR_EVENTS)

	event, err := findEvent(ctx, collection, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Evento no encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_EVENTS_IN_MONGODB)
		return
	}

	prompt := payload.Prompt
	if prompt == "" {
		prompt = defaultBannerPrompt(event)
	}

	imageB64, err := llm.NewClient().GenerateImage(ctx, prompt)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_LLM)
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "banner_prompt", Value: prompt},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	redisClient, err := database.ConnectRedis()
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_REDIS)
		return
	}
	defer redisClient.Close()

	cacheKey := database.REDIS_BANNER_CACHE_PREFIX + idStr
	if err := redisClient.Set(ctx, cacheKey, imageB64, database.REDIS_BANNER_CACHE_TTL).Err(); err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_REDIS)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", bson.M{"prompt": prompt}, 0)
}

func defaultBannerPrompt(event *schemas.WebinarEvent) string {
	return fmt.Sprintf("Banner promocional profesional para el webinar \"%s\". %s", event.Title, event.Description)
}

// GetBanner sirve el banner como imagen PNG; si la caché expiró lo regenera
// con el último prompt guardado y lo vuelve a dejar en caché.
func GetBanner(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	redisClient, err := database.ConnectRedis()
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_REDIS)
		return
	}
	defer redisClient.Close()

	cacheKey := database.REDIS_BANNER_CACHE_PREFIX + idStr
	imageB64, err := redisClient.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		mongoURI := os.Getenv(utils.MONGODB_URI)
		opts := options.Client().ApplyURI(mongoURI)
		mongoClient, connectErr := mongo.Connect(opts)
		if connectErr != nil {
			utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
			return
		}
		defer mongoClient.Disconnect(ctx)

		collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_WEBINAR_EVENTS)

		event, findErr := findEvent(ctx, collection, id)
		if findErr != nil {
			if findErr == mongo.ErrNoDocuments {
				utils.SendResponse(w, http.StatusNotFound, "Evento no encontrado", nil, 0)
				return
			}
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_EVENTS_IN_MONGODB)
			return
		}

		prompt := event.BannerPrompt
		if prompt == "" {
			prompt = defaultBannerPrompt(event)
		}

		imageB64, err = llm.NewClient().GenerateImage(ctx, prompt)
		if err != nil {
			utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_LLM)
			return
		}

		if err := redisClient.Set(ctx, cacheKey, imageB64, database.REDIS_BANNER_CACHE_TTL).Err(); err != nil {
			log.Printf("[EVENTS] no se pudo guardar el banner en caché: %v", err)
		}
	} else if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_REDIS)
		return
	}

	image, err := base64.StdEncoding.DecodeString(imageB64)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "El banner en caché está corrupto", nil, 0)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(image)
}
