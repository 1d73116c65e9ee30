package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/hollis-git/lineagebackend/config"
	"github.com/hollis-git/lineagebackend/database"
	"github.com/hollis-git/lineagebackend/locale"
	"github.com/hollis-git/lineagebackend/media"
	"github.com/hollis-git/lineagebackend/models"
	"github.com/hollis-git/lineagebackend/profiles"
	"github.com/hollis-git/lineagebackend/repository"
	"github.com/hollis-git/lineagebackend/services"
	"github.com/hollis-git/lineagebackend/utils"
	"github.com/hollis-git/lineagebackend/workers"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: lineagebackend <command> [arguments]

commands:
  profile       print the profile of an object
  useradd       create a user account
  missing-media list media objects whose files are missing
  thumbnails    generate thumbnails for all media files
  detect-faces  detect faces in a media file
  import-media  register a media file in the tree`)
	os.Exit(2)
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	store := repository.NewGormStore(db, cfg.ReadOnly)
	if err := store.AutoMigrate(); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	loc := locale.ForLanguage(cfg.DefaultLocale)

	switch os.Args[1] {
	case "profile":
		runProfile(store, loc, os.Args[2:])
	case "useradd":
		runUserAdd(db, os.Args[2:])
	case "missing-media":
		runMissingMedia(ctx, cfg, store)
	case "thumbnails":
		runThumbnails(ctx, cfg, store)
	case "detect-faces":
		runDetectFaces(ctx, cfg, store, os.Args[2:])
	case "import-media":
		runImportMedia(ctx, cfg, store, os.Args[2:])
	default:
		usage()
	}
}

func runProfile(store *repository.GormStore, loc *locale.Locale, args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	kindName := fs.String("kind", "person", "object kind")
	handle := fs.String("handle", "", "object handle")
	optNames := fs.String("options", "", "comma-separated expansion options (e.g. all)")
	fs.Parse(args)
	if *handle == "" {
		log.Fatal("FATAL: -handle is required")
	}

	var names []string
	if *optNames != "" {
		names = strings.Split(*optNames, ",")
	}
	opts := profiles.NewOptions(names...)

	var profile map[string]any
	switch repository.Kind(*kindName) {
	case repository.KindPerson:
		profile = profiles.PersonProfileForHandle(store, *handle, opts, loc)
	case repository.KindFamily:
		profile = profiles.FamilyProfileForHandle(store, *handle, opts, loc)
	case repository.KindEvent:
		profile = profiles.EventProfileForHandle(store, *handle, opts, nil, "", loc, "")
	case repository.KindPlace:
		profile = profiles.PlaceProfileForHandle(store, *handle, loc, true)
	case repository.KindCitation:
		profile = profiles.CitationProfileForHandle(store, *handle, loc)
	case repository.KindMedia:
		profile = profiles.MediaProfileForHandle(store, *handle, loc)
	default:
		log.Fatalf("FATAL: kind %q has no profile", *kindName)
	}

	out, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		log.Fatalf("FATAL: Failed to encode profile: %v", err)
	}
	fmt.Println(string(out))
}

func runUserAdd(db *gorm.DB, args []string) {
	fs := flag.NewFlagSet("useradd", flag.ExitOnError)
	username := fs.String("username", "", "account name")
	password := fs.String("password", "", "account password")
	fullName := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	role := fs.Int("role", 1, "role (0 guest, 1 member, 2 editor, 3 owner)")
	fs.Parse(args)
	if *username == "" || *password == "" {
		log.Fatal("FATAL: -username and -password are required")
	}

	user := &models.User{
		Username: *username,
		FullName: *fullName,
		Email:    *email,
		Role:     *role,
	}
	if err := user.SetPassword(*password); err != nil {
		log.Fatalf("FATAL: Failed to hash password: %v", err)
	}
	users := repository.NewGormUserRepository(db)
	if err := users.Create(user); err != nil {
		log.Fatalf("FATAL: Failed to create user %s: %v", *username, err)
	}
	log.Printf("created user %s (id %d)", user.Username, user.ID)
}

func runMissingMedia(ctx context.Context, cfg config.Config, store *repository.GormStore) {
	handler, err := media.NewHandler(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize media handler: %v", err)
	}
	objects, err := store.AllMedia()
	if err != nil {
		log.Fatalf("FATAL: Failed to list media objects: %v", err)
	}
	missing, err := media.FilterMissing(ctx, handler, objects)
	if err != nil {
		log.Fatalf("FATAL: Failed to check media files: %v", err)
	}
	for _, obj := range missing {
		fmt.Printf("%s\t%s\t%s\n", obj.Handle, obj.GrampsID, obj.Path)
	}
	log.Printf("%d of %d media files missing", len(missing), len(objects))
}

func runThumbnails(ctx context.Context, cfg config.Config, store *repository.GormStore) {
	handler, err := media.NewHandler(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize media handler: %v", err)
	}
	objects, err := store.AllMedia()
	if err != nil {
		log.Fatalf("FATAL: Failed to list media objects: %v", err)
	}

	gen := workers.NewThumbnailGenerator(cfg, handler, cfg.ThumbnailQueueSize, cfg.NumThumbnailWorkers)
	queued := 0
	for _, obj := range objects {
		if gen.QueueJob(workers.ThumbnailJob{Media: obj}) {
			queued++
		}
	}
	log.Printf("queued %d thumbnail job(s)", queued)
	close(gen.JobQueue)
	gen.Wg.Wait()
}

func runDetectFaces(ctx context.Context, cfg config.Config, store *repository.GormStore, args []string) {
	fs := flag.NewFlagSet("detect-faces", flag.ExitOnError)
	handle := fs.String("handle", "", "media handle")
	fs.Parse(args)
	if *handle == "" {
		log.Fatal("FATAL: -handle is required")
	}

	obj, err := store.MediaFromHandle(*handle)
	if err != nil {
		log.Fatalf("FATAL: Failed to load media %s: %v", *handle, err)
	}
	handler, err := media.NewHandler(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize media handler: %v", err)
	}
	local, ok := handler.(*media.LocalHandler)
	if !ok {
		log.Fatal("FATAL: face detection requires local media storage")
	}
	imagePath, err := local.FullPath(obj)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	detector := media.NewDNNFaceDetector(cfg.FaceDNNNetConfigPath, cfg.FaceDNNNetModelPath)
	defer detector.Close()
	detections, err := media.DetectFacesInFile(imagePath, detector)
	if err != nil {
		log.Fatalf("FATAL: Face detection failed: %v", err)
	}

	info, err := utils.GetImageInfo(imagePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to read image info: %v", err)
	}
	for _, d := range detections {
		ref := media.DetectionToMediaRef(obj.Handle, d, info.Width, info.Height)
		out, _ := json.Marshal(ref)
		fmt.Println(string(out))
	}
}

func runImportMedia(ctx context.Context, cfg config.Config, store *repository.GormStore, args []string) {
	fs := flag.NewFlagSet("import-media", flag.ExitOnError)
	path := fs.String("path", "", "file path relative to the media base dir")
	desc := fs.String("desc", "", "description")
	fs.Parse(args)
	if *path == "" {
		log.Fatal("FATAL: -path is required")
	}

	obj := &models.Media{Path: *path, Desc: *desc}
	handler, err := media.NewHandler(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize media handler: %v", err)
	}
	if local, ok := handler.(*media.LocalHandler); ok {
		full, err := local.FullPath(obj)
		if err != nil {
			log.Fatalf("FATAL: %v", err)
		}
		checksum, err := utils.FileChecksum(full)
		if err != nil {
			log.Fatalf("FATAL: Failed to checksum %s: %v", full, err)
		}
		obj.Checksum = checksum
		if info, err := utils.GetImageInfo(full); err == nil {
			obj.Mime = info.Mime
			if info.TakenAt != nil {
				obj.Date = models.Date{
					Year:  info.TakenAt.Year(),
					Month: int(info.TakenAt.Month()),
					Day:   info.TakenAt.Day(),
				}
			}
		}
	}

	txn, err := store.WithTransaction("Import media", func(ws repository.WriteStore, txn *repository.Txn) error {
		_, err := services.AddObject(ws, obj, txn, true)
		return err
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to import media: %v", err)
	}
	for _, entry := range services.DescribeTransaction(txn) {
		log.Printf("%s %s %s", entry.Type, entry.Class, entry.Handle)
	}
	log.Printf("imported media %s as %s", *path, obj.Handle)
}
