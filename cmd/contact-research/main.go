package main

import (
	"context"
	"flag"
	"log"

	"github.com/leadflow/contact-research/internal/adapters/dnsx"
	"github.com/leadflow/contact-research/internal/adapters/github"
	searchadapter "github.com/leadflow/contact-research/internal/adapters/search"
	"github.com/leadflow/contact-research/internal/adapters/smtpx"
	"github.com/leadflow/contact-research/internal/adapters/storage"
	"github.com/leadflow/contact-research/internal/adapters/website"
	"github.com/leadflow/contact-research/internal/application"
	"github.com/leadflow/contact-research/internal/config"
	"github.com/leadflow/contact-research/internal/domain"
	"github.com/leadflow/contact-research/internal/domain/discovery"
	"github.com/leadflow/contact-research/internal/domain/research"
	"github.com/leadflow/contact-research/internal/ports"
	"github.com/leadflow/contact-research/internal/quota"
)

func main() {
	var (
		fullName    = flag.String("name", "", "contact full name (required)")
		companyName = flag.String("company", "", "company name (required)")
		domainHint  = flag.String("domain", "", "company domain hint from the source post (optional)")
		roleTitle   = flag.String("title", "", "contact role title (optional)")
		linkedinURL = flag.String("linkedin", "", "contact LinkedIn URL (optional)")
		sourceURL   = flag.String("source", "", "source post URL (optional)")
	)
	flag.Parse()

	if *fullName == "" || *companyName == "" {
		flag.Usage()
		log.Fatal("both -name and -company are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Starting contact research...")

	// Network adapters (driven port implementations)
	dns := dnsx.New(cfg.DNSTimeout)
	engines := []ports.SearchEngine{
		searchadapter.NewDuckDuckGo(cfg.HTTPTimeout),
		searchadapter.NewGoogle(cfg.HTTPTimeout),
	}
	siteScraper := website.NewScraper(cfg.HTTPTimeout)
	profiles := github.NewClient(cfg.HTTPTimeout)
	prober := smtpx.New(cfg.SMTPTimeout)

	// Core resolution wiring: verifier is shared between the deep SMTP
	// collector and the fallback so MX/catch-all caches are shared too.
	verifier := research.NewSMTPVerifier(dns, prober, cfg.SMTPDelay, cfg.DisableSMTP)
	fallback := research.NewFallback(cfg.EmailPatterns, siteScraper, verifier, profiles)
	tracker := quota.NewTracker(cfg.QuotaFile, cfg.DailyDeepLimit)
	collectors := []research.Collector{
		research.NewWebsiteCollector(siteScraper),
		research.NewMentionCollector(engines[0], cfg.MentionQueries),
		research.NewContextCollector(engines[0]),
		research.NewSMTPCollector(verifier),
	}
	resolver := research.NewResolver(cfg.EmailPatterns, research.DefaultWeights(), collectors, tracker, fallback)
	finder := discovery.NewFinder(engines, dns, cfg.CommonTLDs)

	// Optional persistence
	var store ports.ContactStore
	if cfg.DatabaseURL != "" {
		pg, err := storage.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		if err := pg.InitSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		store = pg
		log.Println("Connected to PostgreSQL")
	} else {
		log.Println("DATABASE_URL not set; running without persistence")
	}

	service := application.NewResearchService(finder, resolver, store)

	ctx := context.Background()
	contact, err := service.ResearchLead(ctx, domain.Lead{
		FullName:    *fullName,
		RoleTitle:   *roleTitle,
		CompanyName: *companyName,
		DomainHint:  *domainHint,
		LinkedInURL: *linkedinURL,
		SourceURL:   *sourceURL,
	})
	if err != nil {
		log.Fatalf("Research failed: %v", err)
	}
	if contact == nil {
		log.Println("No contact resolved (unusable identity)")
		return
	}

	log.Printf("Resolved contact:")
	log.Printf("  Name:       %s", contact.FullName)
	log.Printf("  Company:    %s (%s)", contact.CompanyName, contact.CompanyDomain)
	log.Printf("  Email:      %s", contact.Email)
	log.Printf("  Confidence: %s", contact.Confidence)
	log.Printf("  Method:     %s", contact.Method)
	log.Printf("Deep research remaining today: %d", tracker.Remaining())
}
