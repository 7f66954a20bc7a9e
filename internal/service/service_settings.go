// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/MKhiriev/voice-dashboard/internal/app"
	"github.com/MKhiriev/voice-dashboard/internal/logger"
	"github.com/MKhiriev/voice-dashboard/internal/store"
	"github.com/MKhiriev/voice-dashboard/models"
)

// Settings keys read by the dashboard itself.
const (
	KeyLiveKitURL       = "LIVEKIT_URL"
	KeyLiveKitAPIKey    = "LIVEKIT_API_KEY"
	KeyLiveKitAPISecret = "LIVEKIT_API_SECRET"
	KeySIPTrunkID       = "VOBIZ_SIP_TRUNK_ID"
	KeyOutboundNumber   = "VOBIZ_OUTBOUND_NUMBER"
)

const (
	fieldText     = "text"
	fieldPassword = "password"
	fieldSelect   = "select"
)

var settingKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type settingSpec struct {
	key         string
	label       string
	kind        string
	placeholder string
	fallback    string
	options     []string
}

type sectionSpec struct {
	id          string
	title       string
	description string
	fields      []settingSpec
}

var settingsLayout = []sectionSpec{
	{
		id:          "livekit",
		title:       "LiveKit Configuration",
		description: "Your LiveKit Cloud credentials for real-time communication",
		fields: []settingSpec{
			{key: KeyLiveKitURL, label: "LiveKit URL", kind: fieldText, placeholder: "wss://your-project.livekit.cloud"},
			{key: KeyLiveKitAPIKey, label: "API Key", kind: fieldText, placeholder: "Your API Key"},
			{key: KeyLiveKitAPISecret, label: "API Secret", kind: fieldPassword, placeholder: "Your API Secret"},
		},
	},
	{
		id:          "deepgram",
		title:       "Deepgram (Speech-to-Text & Text-to-Speech)",
		description: "Deepgram API for voice recognition and synthesis",
		fields: []settingSpec{
			{key: "DEEPGRAM_API_KEY", label: "Deepgram API Key", kind: fieldPassword, placeholder: "Your Deepgram API Key"},
			{key: "TTS_PROVIDER", label: "TTS Provider", kind: fieldSelect, fallback: "deepgram",
				options: []string{"deepgram", "openai", "cartesia", "sarvam"}},
			{key: "DEEPGRAM_TTS_MODEL", label: "Voice Model", kind: fieldSelect, fallback: "aura-asteria-en",
				options: []string{
					"aura-asteria-en", "aura-luna-en", "aura-stella-en", "aura-athena-en",
					"aura-hera-en", "aura-orion-en", "aura-arcas-en", "aura-perseus-en",
					"aura-angus-en", "aura-orpheus-en", "aura-helios-en", "aura-zeus-en",
				}},
		},
	},
	{
		id:          "groq",
		title:       "Groq (AI Language Model)",
		description: "Groq API for fast AI responses",
		fields: []settingSpec{
			{key: "GROQ_API_KEY", label: "Groq API Key", kind: fieldPassword, placeholder: "Your Groq API Key"},
			{key: "LLM_PROVIDER", label: "LLM Provider", kind: fieldSelect, fallback: "groq",
				options: []string{"groq", "openai"}},
			{key: "GROQ_MODEL", label: "Model", kind: fieldSelect, fallback: "llama-3.3-70b-versatile",
				options: []string{"llama-3.3-70b-versatile", "llama-3.1-70b-versatile", "llama-3.1-8b-instant", "mixtral-8x7b-32768"}},
		},
	},
	{
		id:          "sip",
		title:       "SIP / Telephony Configuration",
		description: "SIP trunk settings for making phone calls",
		fields: []settingSpec{
			{key: KeySIPTrunkID, label: "SIP Trunk ID", kind: fieldText, placeholder: "ST_xxxxx"},
			{key: "OUTBOUND_TRUNK_ID", label: "Outbound Trunk ID", kind: fieldText, placeholder: "ST_xxxxx"},
			{key: "VOBIZ_SIP_DOMAIN", label: "SIP Domain", kind: fieldText, placeholder: "your-domain.sip.provider.com"},
			{key: "VOBIZ_USERNAME", label: "SIP Username", kind: fieldText, placeholder: "Username"},
			{key: "VOBIZ_PASSWORD", label: "SIP Password", kind: fieldPassword, placeholder: "Password"},
			{key: KeyOutboundNumber, label: "Outbound Phone Number", kind: fieldText, placeholder: "+91XXXXXXXXXX"},
		},
	},
	{
		id:          "transfer",
		title:       "Call Transfer Settings",
		description: "Configure transfer destinations for call routing",
		fields: []settingSpec{
			{key: "DEFAULT_TRANSFER_NUMBER", label: "Default Transfer Number", kind: fieldText, placeholder: "+91XXXXXXXXXX"},
			{key: "TRANSFER_SALES", label: "Sales Team Number", kind: fieldText, placeholder: "+91XXXXXXXXXX"},
			{key: "TRANSFER_SUPPORT", label: "Support Team Number", kind: fieldText, placeholder: "+91XXXXXXXXXX"},
			{key: "TRANSFER_MANAGER", label: "Manager Number", kind: fieldText, placeholder: "+91XXXXXXXXXX"},
			{key: "TRANSFER_ANNOUNCEMENT", label: "Transfer Announcement", kind: fieldText,
				fallback:    "I'm transferring you now. Please hold for just a moment.",
				placeholder: "I'm transferring you now..."},
		},
	},
}

type settingsService struct {
	storage store.SettingsStorage

	// lookupEnv is consulted for keys the settings file does not hold.
	lookupEnv func(string) string

	logger *logger.Logger
}

func NewSettingsService(storage store.SettingsStorage, logger *logger.Logger) SettingsService {
	return &settingsService{
		storage:   storage,
		lookupEnv: os.Getenv,
		logger:    logger,
	}
}

// Settings fills the settings layout with values from the settings file.
// Keys missing from the file show the field default.
func (s *settingsService) Settings(ctx context.Context) (map[string]models.SettingsSection, error) {
	values, err := s.storage.Read(ctx)
	if err != nil {
		return nil, err
	}

	sections := make(map[string]models.SettingsSection, len(settingsLayout))
	for _, section := range settingsLayout {
		fields := make([]models.SettingsField, 0, len(section.fields))
		for _, f := range section.fields {
			value, ok := values[f.key]
			if !ok {
				value = f.fallback
			}
			fields = append(fields, models.SettingsField{
				Key:         f.key,
				Label:       f.label,
				Value:       value,
				Type:        f.kind,
				Placeholder: f.placeholder,
				Options:     f.options,
			})
		}
		sections[section.id] = models.SettingsSection{
			Title:       section.title,
			Description: section.description,
			Fields:      fields,
		}
	}

	return sections, nil
}

// Save writes every non-nil value. Keys outside the layout are accepted as
// long as they are valid environment variable names.
func (s *settingsService) Save(ctx context.Context, values map[string]*string) error {
	toWrite := make(map[string]string, len(values))
	for key, value := range values {
		if !settingKeyPattern.MatchString(key) {
			return fmt.Errorf("%w: %q", ErrInvalidSettingKey, key)
		}
		if value == nil {
			continue
		}
		toWrite[key] = *value
	}

	if len(toWrite) == 0 {
		return nil
	}

	if err := s.storage.Write(ctx, toWrite); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int("keys", len(toWrite)).Msg("settings saved")
	return nil
}

func (s *settingsService) Status(ctx context.Context) (models.ServiceStatus, error) {
	values, err := s.storage.Read(ctx)
	if err != nil {
		return models.ServiceStatus{}, err
	}
	get := s.getter(values)

	url := get(KeyLiveKitURL)
	trunkID := get(KeySIPTrunkID)
	outbound := get(KeyOutboundNumber)

	status := models.ServiceStatus{
		Configured:      url != "" && get(KeyLiveKitAPIKey) != "" && get(KeyLiveKitAPISecret) != "" && trunkID != "",
		LiveKitURL:      url,
		TrunkConfigured: trunkID != "",
		OutboundNumber:  outbound,
	}
	if status.LiveKitURL == "" {
		status.LiveKitURL = app.MsgNotConfigured
	}
	if status.OutboundNumber == "" {
		status.OutboundNumber = app.MsgNotConfigured
	}

	return status, nil
}

func (s *settingsService) LiveKitCredentials(ctx context.Context) (models.LiveKitCredentials, error) {
	values, err := s.storage.Read(ctx)
	if err != nil {
		return models.LiveKitCredentials{}, err
	}
	get := s.getter(values)

	return models.LiveKitCredentials{
		URL:       get(KeyLiveKitURL),
		APIKey:    get(KeyLiveKitAPIKey),
		APISecret: get(KeyLiveKitAPISecret),
	}, nil
}

// getter prefers the settings file and falls back to the process
// environment.
func (s *settingsService) getter(values map[string]string) func(string) string {
	return func(key string) string {
		if v := values[key]; v != "" {
			return v
		}
		return s.lookupEnv(key)
	}
}
