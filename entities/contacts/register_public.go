package contacts

import (
	"api/database"
	"api/integrations/hubspot"
	"api/integrations/turnstile"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type publicRegistration struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	JobTitle       string `json:"job_title"`
	CompanyName    string `json:"company_name"`
	TurnstileToken string `json:"turnstile_token"`
}

// RegisterPublic da de alta un contacto desde el formulario público. El
// reenvío con el mismo correo responde 200 con el documento existente.
func RegisterPublic(w http.ResponseWriter, r *http.Request) {
	payload := publicRegistration{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CONTACTS_INVALID_REQUEST_DATA)
		return
	}

	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Email == "" || payload.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "Nombre y correo son obligatorios", nil, 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	remoteIP, _, _ := net.SplitHostPort(r.RemoteAddr)
	ok, err := turnstile.NewClient().Verify(ctx, payload.TurnstileToken, remoteIP)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_VERIFY_TURNSTILE_TOKEN)
		return
	}
	if !ok {
		utils.SendResponse(w, http.StatusForbidden, "Verificación CAPTCHA fallida", nil, 0)
		return
	}

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_UNIFIED_CONTACTS)

	existing := schemas.Contact{}
	filter := bson.D{{Key: "email", Value: payload.Email}}
	err = collection.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		utils.SendResponse(w, http.StatusOK, "El contacto ya estaba registrado", existing, 0)
		return
	}
	if err != mongo.ErrNoDocuments {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CONTACTS_IN_MONGODB)
		return
	}

	contact := schemas.Contact{
		Name:         payload.Name,
		Email:        payload.Email,
		Phone:        payload.Phone,
		JobTitle:     payload.JobTitle,
		CompanyName:  payload.CompanyName,
		Stage:        1,
		BuyerPersona: ClassifyBuyerPersona(payload.JobTitle),
		Source:       "public_form",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result, err := collection.InsertOne(ctx, contact)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Registro concurrente con el mismo correo: responder el existente.
			if findErr := collection.FindOne(ctx, filter).Decode(&existing); findErr == nil {
				utils.SendResponse(w, http.StatusOK, "El contacto ya estaba registrado", existing, 0)
				return
			}
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CONTACT_TO_MONGODB)
		return
	}

	if insertedID, ok := result.InsertedID.(bson.ObjectID); ok {
		contact.ID = insertedID
	}

	// Si el correo ya existe en HubSpot, enlazar el espejo.
	matches, err := hubspot.NewClient().SearchContactsByEmail(ctx, payload.Email, []string{"email"})
	if err != nil {
		log.Printf("[HUBSPOT] no se pudo buscar el contacto %s: %v", payload.Email, err)
	} else if len(matches) > 0 {
		contact.HubspotID = matches[0].ID
		link := bson.D{{Key: "$set", Value: bson.D{{Key: "hubspot_id", Value: contact.HubspotID}}}}
		if _, err := collection.UpdateOne(ctx, bson.D{{Key: "_id", Value: contact.ID}}, link); err != nil {
			log.Printf("[HUBSPOT] no se pudo guardar el enlace del contacto %s: %v", payload.Email, err)
		}
	}

	utils.SendResponse(w, http.StatusCreated, "", contact, 0)
}
