package main

import (
	"api/entities/audit"
	"api/entities/cases"
	"api/entities/companies"
	"api/entities/contacts"
	"api/entities/documents"
	"api/entities/drive"
	"api/entities/events"
	"api/entities/imports"
	mediacontacts "api/entities/media_contacts"
	"api/entities/medications"
	"api/entities/prospection"
	"api/entities/scrappers"
	"api/middlewares"
	"api/utils"
	"fmt"
	"net/http"
	"os"
	"time"
)

func main() {
	utils.LoadEnvVariables()

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[ATENCIÓN] ¡Corriendo en ambiente de PRODUCCIÓN!\033[0m\n")
	} else {
		fmt.Printf("[INFO] Ambiente actual: %s\n", env)
	}

	mux := http.NewServeMux()

	mux.Handle("GET /v1/contacts", middlewares.PanelAuth(http.HandlerFunc(contacts.GetAll)))
	mux.Handle("GET /v1/contacts/{id}", middlewares.PanelAuth(http.HandlerFunc(contacts.GetOne)))
	mux.Handle("POST /v1/contacts", middlewares.PanelAuth(http.HandlerFunc(contacts.CreateOne)))
	mux.Handle("PATCH /v1/contacts/{id}", middlewares.PanelAuth(http.HandlerFunc(contacts.UpdateOne)))
	mux.Handle("PATCH /v1/contacts/{id}/stage", middlewares.PanelAuth(http.HandlerFunc(contacts.UpdateOneStage)))
	mux.Handle("POST /v1/contacts/{id}/discard", middlewares.PanelAuth(http.HandlerFunc(contacts.DiscardOne)))
	mux.Handle("POST /v1/contacts/{id}/reactivate", middlewares.PanelAuth(http.HandlerFunc(contacts.ReactivateOne)))
	mux.Handle("POST /v1/contacts/{id}/classify", middlewares.PanelAuth(http.HandlerFunc(contacts.ClassifyOne)))

	mux.Handle("GET /v1/companies", middlewares.PanelAuth(http.HandlerFunc(companies.GetAll)))
	mux.Handle("GET /v1/companies/{id}", middlewares.PanelAuth(http.HandlerFunc(companies.GetOne)))
	mux.Handle("POST /v1/companies", middlewares.PanelAuth(http.HandlerFunc(companies.CreateOne)))
	mux.Handle("PATCH /v1/companies/{id}", middlewares.PanelAuth(http.HandlerFunc(companies.UpdateOne)))
	mux.Handle("POST /v1/companies/merge", middlewares.PanelAuth(http.HandlerFunc(companies.Merge)))
	mux.Handle("POST /v1/companies/auto-merge", middlewares.PanelAuth(http.HandlerFunc(companies.AutoMerge)))

	mux.Handle("GET /v1/cases", middlewares.PanelAuth(http.HandlerFunc(cases.GetAll)))
	mux.Handle("GET /v1/cases/{id}", middlewares.PanelAuth(http.HandlerFunc(cases.GetOne)))
	mux.Handle("POST /v1/cases", middlewares.PanelAuth(http.HandlerFunc(cases.CreateOne)))
	mux.Handle("PATCH /v1/cases/{id}", middlewares.PanelAuth(http.HandlerFunc(cases.UpdateOne)))
	mux.Handle("PATCH /v1/cases/{id}/stage", middlewares.PanelAuth(http.HandlerFunc(cases.UpdateOneStage)))
	mux.Handle("POST /v1/cases/{id}/discard", middlewares.PanelAuth(http.HandlerFunc(cases.DiscardOne)))
	mux.Handle("GET /v1/cases/{id}/weekly-status", middlewares.PanelAuth(http.HandlerFunc(cases.GetWeeklyStatus)))
	mux.Handle("GET /v1/cases/{id}/checklists", middlewares.PanelAuth(http.HandlerFunc(cases.GetChecklists)))
	mux.Handle("PATCH /v1/cases/{id}/checklists/{group}/{column}/{contactId}", middlewares.PanelAuth(http.HandlerFunc(cases.UpdateChecklistCell)))
	mux.Handle("POST /v1/cases/{id}/sync-quotes", middlewares.PanelAuth(http.HandlerFunc(cases.SyncQuotes)))
	mux.Handle("POST /v1/cases/import/hubspot", middlewares.PanelAuth(http.HandlerFunc(cases.ImportFromHubspot)))
	mux.HandleFunc("/v1/ws/cases", cases.CaseWebSocketHandler)

	mux.Handle("GET /v1/events-v2", middlewares.PanelAuth(http.HandlerFunc(events.GetAll)))
	mux.Handle("GET /v1/events-v2/{id}", middlewares.PanelAuth(http.HandlerFunc(events.GetOne)))
	mux.Handle("POST /v1/events-v2", middlewares.PanelAuth(http.HandlerFunc(events.CreateOne)))
	mux.Handle("PATCH /v1/events-v2/{id}", middlewares.PanelAuth(http.HandlerFunc(events.UpdateOne)))
	mux.Handle("POST /v1/events-v2/{id}/tasks", middlewares.PanelAuth(http.HandlerFunc(events.AddTask)))
	mux.Handle("PATCH /v1/events-v2/{id}/tasks/{index}", middlewares.PanelAuth(http.HandlerFunc(events.UpdateTask)))
	mux.Handle("POST /v1/events-v2/{id}/broadcast", middlewares.PanelAuth(http.HandlerFunc(events.CreateBroadcast)))
	mux.Handle("POST /v1/events-v2/{id}/calendar", middlewares.PanelAuth(http.HandlerFunc(events.CreateCalendar)))
	mux.Handle("POST /v1/events-v2/{id}/banner", middlewares.PanelAuth(http.HandlerFunc(events.GenerateBanner)))
	mux.Handle("GET /v1/events-v2/{id}/banner", middlewares.PanelAuth(http.HandlerFunc(events.GetBanner)))
	mux.Handle("POST /v1/events-v2/{id}/copy", middlewares.PanelAuth(http.HandlerFunc(events.GenerateCopy)))

	mux.Handle("GET /v1/prospection", middlewares.PanelAuth(http.HandlerFunc(prospection.GetPending)))
	mux.Handle("POST /v1/prospection/{id}/qualify", middlewares.PanelAuth(http.HandlerFunc(prospection.QualifyOne)))
	mux.Handle("POST /v1/prospection/consolidate", middlewares.PanelAuth(http.HandlerFunc(prospection.Consolidate)))

	mux.Handle("POST /v1/scrappers/linkedin", middlewares.PanelAuth(http.HandlerFunc(scrappers.RunLinkedin)))
	mux.Handle("POST /v1/scrappers/maps", middlewares.PanelAuth(http.HandlerFunc(scrappers.RunMaps)))

	mux.Handle("POST /v1/imports/hubspot/contacts", middlewares.PanelAuth(http.HandlerFunc(imports.ImportHubspotContacts)))
	mux.Handle("POST /v1/imports/linkedin/csv", middlewares.PanelAuth(http.HandlerFunc(imports.ImportLinkedinCSV)))
	mux.Handle("POST /v1/imports/legacy/contacts", middlewares.PanelAuth(http.HandlerFunc(imports.ImportLegacyContacts)))
	mux.Handle("GET /v1/imports/progress/{jobId}", middlewares.PanelAuth(http.HandlerFunc(imports.GetProgress)))

	mux.Handle("GET /v1/documents", middlewares.PanelAuth(http.HandlerFunc(documents.GetAll)))
	mux.Handle("POST /v1/documents", middlewares.PanelAuth(http.HandlerFunc(documents.CreateOne)))
	mux.Handle("PATCH /v1/documents/{id}", middlewares.PanelAuth(http.HandlerFunc(documents.UpdateOne)))
	mux.Handle("POST /v1/documents/{id}/discard", middlewares.PanelAuth(http.HandlerFunc(documents.DiscardOne)))

	mux.Handle("GET /v1/media-contacts", middlewares.PanelAuth(http.HandlerFunc(mediacontacts.GetAll)))
	mux.Handle("POST /v1/media-contacts", middlewares.PanelAuth(http.HandlerFunc(mediacontacts.CreateOne)))
	mux.Handle("PATCH /v1/media-contacts/{id}", middlewares.PanelAuth(http.HandlerFunc(mediacontacts.UpdateOne)))
	mux.Handle("POST /v1/media-contacts/{id}/discard", middlewares.PanelAuth(http.HandlerFunc(mediacontacts.DiscardOne)))

	mux.Handle("GET /v1/drive/files", middlewares.PanelAuth(http.HandlerFunc(drive.ListFiles)))

	mux.Handle("GET /v1/medications", middlewares.PanelAuth(http.HandlerFunc(medications.GetAll)))

	mux.Handle("GET /v1/audit", middlewares.PanelAuth(http.HandlerFunc(audit.GetAll)))

	mux.Handle("POST /v1/public/contacts/register", http.HandlerFunc(contacts.RegisterPublic))
	mux.Handle("POST /v1/public/events/{id}/register", http.HandlerFunc(events.RegisterPublic))

	fmt.Printf("Servidor iniciado en el puerto %s a las %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
	http.ListenAndServe(fmt.Sprintf(":%s", os.Getenv(utils.PORT)), middlewares.SecurityHeaders(middlewares.Cors(mux)))
}
