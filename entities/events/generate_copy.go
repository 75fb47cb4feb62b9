package events

import (
	"api/database"
	"api/integrations/llm"
	"api/utils"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const copySystemPrompt = "Eres un redactor de marketing B2B del sector salud. " +
	"Escribes en español neutro, con tono profesional y directo."

// GenerateCopy produce el correo de invitación y propuestas de título para el
// webinar, y los guarda en el propio evento.
func GenerateCopy(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")

	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_EVENT_ID_FORMAT)
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

	llmClient := llm.NewClient()

	emailPrompt := fmt.Sprintf(
		"Escribe un correo de invitación para el webinar \"%s\" que se realizará el %s. Descripción: %s. Ponentes: %s.",
		event.Title, event.StartsAt.Format("02/01/2006 15:04"), event.Description, strings.Join(event.Speakers, ", "))
	emailCopy, err := llmClient.GenerateText(ctx, copySystemPrompt, emailPrompt)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_LLM)
		return
	}

	titlesPrompt := fmt.Sprintf(
		"Propón 5 títulos alternativos para el webinar \"%s\". Descripción: %s. Responde solo con un título por línea, sin numerar.",
		event.Title, event.Description)
	titlesRaw, err := llmClient.GenerateText(ctx, copySystemPrompt, titlesPrompt)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_LLM)
		return
	}

	titleIdeas := []string{}
	for _, line := range strings.Split(titlesRaw, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-*• "))
		if line != "" {
			titleIdeas = append(titleIdeas, line)
		}
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "email_copy", Value: emailCopy},
		{Key: "title_ideas", Value: titleIdeas},
		{Key: "updated_at", Value: time.Now()},
	}}}
	if _, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_EVENT_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", bson.M{
		"email_copy":  emailCopy,
		"title_ideas": titleIdeas,
	}, 0)
}
