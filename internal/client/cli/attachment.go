package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/keyfold/keyfold/internal/cryptox"
	"github.com/keyfold/keyfold/internal/filex"
	"github.com/keyfold/keyfold/internal/netx"
)

// Upload seals a local file under the conversation's current epoch key
// and PUTs it to object storage through a presigned URL. The storage key
// is printed for sharing; any member holding the epoch key can open it.
func (a *App) Upload(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	filePath, err := getSimpleText(a.reader, "Enter file path", os.Stdout)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	chain, keys, err := a.recoverChain(ctx, conversationID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	currentKey, ok := keys[chain.CurrentEpoch]
	if !ok {
		return fmt.Errorf("no key recovered for current epoch %d", chain.CurrentEpoch)
	}

	sealed, err := cryptox.EncryptAttachment(currentKey, data)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	key, url, err := a.api.GetPresignedPutURL(ctx, conversationID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := netx.UploadToPresignedURL(url, sealed); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("Uploaded %s as %s\n", filepath.Base(filePath), key)
	return nil
}

// Download fetches a sealed attachment, opens it with the recovered
// epoch keys and writes it under ./download. The storage key does not
// say which epoch sealed the object, so keys are tried newest first.
func (a *App) Download(ctx context.Context) error {
	if !a.isUnlocked() {
		fmt.Println("Unlock the identity first ('unlock')")
		return nil
	}

	conversationID, err := getSimpleText(a.reader, "Enter conversation id", os.Stdout)
	if err != nil {
		return err
	}
	storageKey, err := getSimpleText(a.reader, "Enter attachment key", os.Stdout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	_, keys, err := a.recoverChain(ctx, conversationID)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	url, err := a.api.GetPresignedGetURL(ctx, storageKey)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	sealed, err := netx.DownloadFromPresignedURL(url)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	data, err := openAttachment(keys, sealed)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	dir, err := filex.EnsureSubDir("download")
	if err != nil {
		return err
	}

	outputFile := filepath.Join(dir, filepath.Base(storageKey))
	if err := os.WriteFile(outputFile, data, 0o600); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("File saved to: %s", outputFile)
	return nil
}

// openAttachment tries the recovered epoch keys newest first until one
// authenticates the blob.
func openAttachment(keys map[int64][]byte, sealed []byte) ([]byte, error) {
	epochs := make([]int64, 0, len(keys))
	for epoch := range keys {
		epochs = append(epochs, epoch)
	}
	sort.Slice(epochs, func(i, j int) bool { return epochs[i] > epochs[j] })

	for _, epoch := range epochs {
		if data, err := cryptox.DecryptAttachment(keys[epoch], sealed); err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("no recovered epoch key opens this attachment")
}
