package models

// Default content records. These stand in verbatim whenever the CMS is
// unreachable or returns nothing, so the site always renders complete copy
// in all four locales.

func DefaultHomePage() HomePage {
	return HomePage{
		HeroTitle: LocalizedText{
			Es: "Booking de Artistas Cubanos",
			En: "Cuban Artists Booking",
			Fr: "Réservation d'Artistes Cubains",
			It: "Prenotazione Artisti Cubani",
		},
		HeroSubtitle: LocalizedText{
			Es: "Conectamos el talento cubano con el mundo",
			En: "Connecting Cuban talent with the world",
			Fr: "Connecter le talent cubain avec le monde",
			It: "Colleghiamo il talento cubano con il mondo",
		},
		Stats: Stats{Years: 30, Artists: 50, Festivals: 100, Countries: 15},
		AboutTitle: LocalizedText{
			Es: "Sobre Nosotros",
			En: "About Us",
			Fr: "À Propos",
			It: "Chi Siamo",
		},
		AboutText: LocalizedText{
			Es: "Somos una agencia de booking especializada en artistas cubanos.",
			En: "We are a booking agency specialized in Cuban artists.",
			Fr: "Nous sommes une agence de booking spécialisée dans les artistes cubains.",
			It: "Siamo un'agenzia di booking specializzata in artisti cubani.",
		},
		CTAText: LocalizedText{
			Es: "Ver Artistas",
			En: "View Artists",
			Fr: "Voir les Artistes",
			It: "Vedi Artisti",
		},
	}
}

func DefaultAboutPage() AboutPage {
	return AboutPage{
		Title: LocalizedText{
			Es: "Sobre Nosotros",
			En: "About Us",
			Fr: "À Propos",
			It: "Chi Siamo",
		},
		Subtitle: LocalizedText{
			Es: "Más de 30 años de experiencia",
			En: "Over 30 years of experience",
			Fr: "Plus de 30 ans d'expérience",
			It: "Oltre 30 anni di esperienza",
		},
		MissionTitle: LocalizedText{
			Es: "Nuestra Misión",
			En: "Our Mission",
			Fr: "Notre Mission",
			It: "La Nostra Missione",
		},
		MissionText: LocalizedText{
			Es: "Conectar el talento cubano con escenarios de todo el mundo.",
			En: "Connecting Cuban talent with stages around the world.",
			Fr: "Connecter le talent cubain avec les scènes du monde entier.",
			It: "Collegare il talento cubano con i palcoscenici di tutto il mondo.",
		},
		Stats: Stats{Years: 30, Festivals: 100, Countries: 15, Artists: 50},
		Services: [3]Service{
			{
				Title: LocalizedText{Es: "Booking", En: "Booking", Fr: "Réservation", It: "Prenotazione"},
				Text: LocalizedText{
					Es: "Gestión completa de contrataciones",
					En: "Complete booking management",
					Fr: "Gestion complète des réservations",
					It: "Gestione completa delle prenotazioni",
				},
			},
			{
				Title: LocalizedText{Es: "Producción", En: "Production", Fr: "Production", It: "Produzione"},
				Text: LocalizedText{
					Es: "Producción de eventos y conciertos",
					En: "Event and concert production",
					Fr: "Production d'événements et concerts",
					It: "Produzione di eventi e concerti",
				},
			},
			{
				Title: LocalizedText{Es: "Tours", En: "Tours", Fr: "Tournées", It: "Tour"},
				Text: LocalizedText{
					Es: "Organización de giras internacionales",
					En: "International tour organization",
					Fr: "Organisation de tournées internationales",
					It: "Organizzazione di tour internazionali",
				},
			},
		},
	}
}

func DefaultContactPage() ContactPage {
	return ContactPage{
		Title: LocalizedText{Es: "Contacto", En: "Contact", Fr: "Contact", It: "Contatto"},
		Subtitle: LocalizedText{
			Es: "Estamos aquí para ayudarte",
			En: "We are here to help you",
			Fr: "Nous sommes là pour vous aider",
			It: "Siamo qui per aiutarti",
		},
		Email:    "info@cubitaproducciones.com",
		Phone:    "+39 XXX XXX XXXX",
		Location: "Roma, Italia",
		ResponseTimeTitle: LocalizedText{
			Es: "Respuesta Rápida",
			En: "Quick Response",
			Fr: "Réponse Rapide",
			It: "Risposta Rapida",
		},
		ResponseTimeText: LocalizedText{
			Es: "Respondemos en menos de 24 horas",
			En: "We respond within 24 hours",
			Fr: "Nous répondons sous 24 heures",
			It: "Rispondiamo entro 24 ore",
		},
		FormLabels: FormLabels{
			Name:    LocalizedText{Es: "Nombre", En: "Name", Fr: "Nom", It: "Nome"},
			Email:   LocalizedText{Es: "Email", En: "Email", Fr: "Email", It: "Email"},
			Country: LocalizedText{Es: "País", En: "Country", Fr: "Pays", It: "Paese"},
			Date:    LocalizedText{Es: "Fecha del evento", En: "Event date", Fr: "Date de l'événement", It: "Data evento"},
			Artist:  LocalizedText{Es: "Artista de interés", En: "Artist of interest", Fr: "Artiste d'intérêt", It: "Artista di interesse"},
			Message: LocalizedText{Es: "Mensaje", En: "Message", Fr: "Message", It: "Messaggio"},
			Submit:  LocalizedText{Es: "Enviar mensaje", En: "Send message", Fr: "Envoyer le message", It: "Invia messaggio"},
		},
		SuccessMessage: LocalizedText{
			Es: "Mensaje enviado correctamente",
			En: "Message sent successfully",
			Fr: "Message envoyé avec succès",
			It: "Messaggio inviato con successo",
		},
		ErrorMessage: LocalizedText{
			Es: "Error al enviar el mensaje",
			En: "Error sending message",
			Fr: "Erreur lors de l'envoi du message",
			It: "Errore nell'invio del messaggio",
		},
	}
}

func DefaultArtistsPage() ArtistsPage {
	return ArtistsPage{
		Title: LocalizedText{
			Es: "Nuestros Artistas",
			En: "Our Artists",
			Fr: "Nos Artistes",
			It: "I Nostri Artisti",
		},
		Subtitle: LocalizedText{
			Es: "Descubre el talento cubano",
			En: "Discover Cuban talent",
			Fr: "Découvrez le talent cubain",
			It: "Scopri il talento cubano",
		},
		ViewDetailsButton: LocalizedText{
			Es: "Ver Detalles",
			En: "View Details",
			Fr: "Voir Détails",
			It: "Vedi Dettagli",
		},
		CTATitle: LocalizedText{
			Es: "¿Interesado en booking?",
			En: "Interested in booking?",
			Fr: "Intéressé par une réservation?",
			It: "Interessato a prenotare?",
		},
		CTASubtitle: LocalizedText{
			Es: "Contacta con nosotros para más información",
			En: "Contact us for more information",
			Fr: "Contactez-nous pour plus d'informations",
			It: "Contattaci per maggiori informazioni",
		},
		SalsaLabel:     LocalizedText{Es: "Salsa", En: "Salsa", Fr: "Salsa", It: "Salsa"},
		ReggaetonLabel: LocalizedText{Es: "Reguetón", En: "Reggaeton", Fr: "Reggaeton", It: "Reggaeton"},
	}
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		CompanyName: "Cubita Producciones",
		Email:       "info@cubitaproducciones.com",
		Phone:       "+39 XXX XXX XXXX",
		Location:    "Roma, Italia",
		Nav: NavLabels{
			Home:    LocalizedText{Es: "Inicio", En: "Home", Fr: "Accueil", It: "Home"},
			Artists: LocalizedText{Es: "Artistas", En: "Artists", Fr: "Artistes", It: "Artisti"},
			About:   LocalizedText{Es: "Sobre Nosotros", En: "About Us", Fr: "À Propos", It: "Chi Siamo"},
			Contact: LocalizedText{Es: "Contacto", En: "Contact", Fr: "Contact", It: "Contatto"},
		},
		FooterDescription: LocalizedText{
			Es: "Agencia de booking de artistas cubanos",
			En: "Cuban artists booking agency",
			Fr: "Agence de réservation d'artistes cubains",
			It: "Agenzia di booking di artisti cubani",
		},
		FooterCopyright: LocalizedText{
			Es: "Todos los derechos reservados",
			En: "All rights reserved",
			Fr: "Tous droits réservés",
			It: "Tutti i diritti riservati",
		},
	}
}
